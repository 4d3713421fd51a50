package cmd

// Config carries the environment-driven settings for the application.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	PixMerchantCity string
	CORSOrigins     []string
}
