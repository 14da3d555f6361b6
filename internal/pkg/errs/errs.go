package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every concrete error
// type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound            = errors.New("object not found")
	ErrObjectAlreadyExists       = errors.New("object already exists")
	ErrValueIsInvalid            = errors.New("value is invalid")
	ErrValueIsOutOfRange         = errors.New("value is out of range")
	ErrValueIsRequired           = errors.New("value is required")
	ErrVersionConflict           = errors.New("version conflict")
	ErrMicroserviceCommunication = errors.New("microservice communication failed")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier. ParamName names the kind of object (e.g. "order", "vendor"),
// ID holds the identifier that missed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// lower-level error that produced the miss.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates a uniqueness violation: an object with
// the given identifier is already stored.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without a cause.
func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError wrapping
// the storage error that detected the duplicate.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation error that explains why the value is invalid.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its
// permitted [Min, Max] interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying validation error.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying error.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionConflictError indicates that an optimistic-concurrency write lost
// the race: the stored aggregate moved past the version the caller read.
type VersionConflictError struct {
	ParamName string
	ID        any
	Version   int64
	Cause     error
}

// NewVersionConflictError creates a VersionConflictError for the aggregate
// identified by id at the stale version the caller attempted to write.
func NewVersionConflictError(paramName string, id any, version int64) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Version: version}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping the
// storage error that detected the conflict.
func NewVersionConflictErrorWithCause(paramName string, id any, version int64, cause error) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Version: version, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s, stale version is %d (cause: %s)",
			ErrVersionConflict, e.ParamName, e.ID, e.Version, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s at version %d", ErrVersionConflict, e.ID, e.Version))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// MicroserviceCommunicationError indicates that a remote collaborator (the
// users or orders service) returned nothing parseable or could not be
// reached at all.
type MicroserviceCommunicationError struct {
	ServiceName string
	Cause       error
}

// NewMicroserviceCommunicationError creates a MicroserviceCommunicationError
// without a cause.
func NewMicroserviceCommunicationError(serviceName string) *MicroserviceCommunicationError {
	return &MicroserviceCommunicationError{ServiceName: serviceName}
}

// NewMicroserviceCommunicationErrorWithCause creates a
// MicroserviceCommunicationError wrapping the transport or decoding error.
func NewMicroserviceCommunicationErrorWithCause(serviceName string, cause error) *MicroserviceCommunicationError {
	return &MicroserviceCommunicationError{ServiceName: serviceName, Cause: cause}
}

func (e *MicroserviceCommunicationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrMicroserviceCommunication, e.ServiceName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrMicroserviceCommunication, e.ServiceName))
}

func (e *MicroserviceCommunicationError) Unwrap() error {
	return ErrMicroserviceCommunication
}
