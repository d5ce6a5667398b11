package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	PlatformFeeRate        float64
	DriverCommissionRate   float64
	PayoutMethod           string
	PayoutSchedule         string
	AdvisoryDigestSchedule string
}
