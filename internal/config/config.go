package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"newspulse.db"`

	Razorpay   Razorpay   `envPrefix:"RAZORPAY_"`
	Reconciler Reconciler `envPrefix:"RECONCILER_"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID"`
	KeySecret  string `env:"KEY_SECRET"`
}

// Configured reports whether both gateway credentials are present. The
// service still starts without them; order/verify calls will fail upstream.
func (r Razorpay) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

type Reconciler struct {
	Interval  string `env:"INTERVAL" envDefault:"1m"`
	BatchSize int    `env:"BATCH_SIZE" envDefault:"50"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"5000"`
}
