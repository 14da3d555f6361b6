package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	UsersServiceURL         string
	GeoServiceURL           string
	OrdersServiceURL        string
	DefaultDeliveryZoneKm   float64
	StatusPushRetrySchedule string
}
