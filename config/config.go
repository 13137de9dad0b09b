package config

import "github.com/caarlos0/env/v6"

type Config struct {
    // Server configuration
    Server struct {
        // Port the API server listens on
        Port string `env:"PORT" envDefault:"5250"`

        // Origins allowed by the CORS middleware (comma-separated)
        AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
    }

    // PropertySearch configuration for the upstream property API
    PropertySearch struct {
        // Base URL of the property search endpoint
        BaseURL string `env:"PROPERTY_API_URL" envDefault:"https://realty-in-us.p.rapidapi.com/properties/v3/list"`

        // API key sent in the request header
        APIKey string `env:"PROPERTY_API_KEY"`

        // Maximum number of records requested per search
        Limit int `env:"PROPERTY_RESULT_LIMIT" envDefault:"40"`
    }

    // VehicleSearch configuration for the upstream vehicle API
    VehicleSearch struct {
        // Base URL of the vehicle search endpoint
        BaseURL string `env:"VEHICLE_API_URL" envDefault:"https://mc-api.marketcheck.com/v2/search/car/active"`

        // API key sent as a query parameter
        APIKey string `env:"VEHICLE_API_KEY"`

        // Number of records requested per search
        Records int `env:"VEHICLE_RESULT_COUNT" envDefault:"40"`

        // Search center and radius
        Zip    string `env:"VEHICLE_SEARCH_ZIP" envDefault:"75080"`
        Radius int    `env:"VEHICLE_SEARCH_RADIUS" envDefault:"50"`
    }

    // Chat configuration for the assistant backend
    Chat struct {
        // URL of the chat/ranking backend
        BackendURL string `env:"CHAT_API_URL" envDefault:"http://localhost:5000/api/chat"`

        // Round-trip timeout in seconds
        TimeoutSeconds int `env:"CHAT_TIMEOUT" envDefault:"60"`
    }

    // Aggregation configuration
    Aggregation struct {
        // Delay after the last filter change before a fetch is issued (milliseconds)
        DebounceMs int `env:"FETCH_DEBOUNCE_MS" envDefault:"500"`

        // Timeout for one fetch cycle in seconds
        FetchTimeoutSeconds int `env:"FETCH_TIMEOUT" envDefault:"30"`

        // Number of listings per page
        PageSize int `env:"PAGE_SIZE" envDefault:"9"`

        // Maximum pending user-visible notices
        NoticeBuffer int `env:"NOTICE_BUFFER" envDefault:"32"`
    }
}

func LoadConfig() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, err
    }
    return cfg, nil
}
