package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App            App
		JWT            JWT
		RabbitMQ       AppRabbitMQ
		Minio          AppMinio
		Interpretation Interpretation
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		Address                        string
		Timezone                       string
		EndpointPrefix                 string
		MaxRequests                    int
		ShutdownTimeoutInSeconds       int
		MaxTimeRequestsPerSeconds      int
		RequestBodyLimitInMegabyte     int
		LoginSessionExpiredTimeInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppRabbitMQ struct {
		NotificationQueue string
	}

	AppMinio struct {
		ReportBucketName string
	}

	Interpretation struct {
		BaseUrl          string
		APIKey           string
		Model            string
		TimeoutInSeconds int
		MaxPerMinute     int
	}
)
