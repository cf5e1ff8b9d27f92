package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Server struct {
		Port              string   `json:"port"`
		RequestTimeout    Duration `json:"request_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		IdleTimeout       Duration `json:"idle_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		JSONBodyLimit     int64    `json:"json_body_limit"`
	} `json:"server,omitempty"`

	CORS struct {
		AllowedOrigins       []string `json:"allowed_origins"`
		AllowedOriginPattern string   `json:"allowed_origin_pattern"`
	} `json:"cors,omitempty"`

	Routes struct {
		Auth        string `json:"auth"`
		Habits      string `json:"habits"`
		Attendance  string `json:"attendance"`
		Schedule    string `json:"schedule"`
		Users       string `json:"users"`
		Assignments string `json:"assignments"`
		Exams       string `json:"exams"`
		Seed        string `json:"seed"`
	} `json:"routes,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Port:              jsonCfg.Server.Port,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			IdleTimeout:       time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			JSONBodyLimit:     jsonCfg.Server.JSONBodyLimit,
		},
		CORS: CORS{
			AllowedOrigins:       jsonCfg.CORS.AllowedOrigins,
			AllowedOriginPattern: jsonCfg.CORS.AllowedOriginPattern,
		},
		Routes: Routes{
			Auth:        jsonCfg.Routes.Auth,
			Habits:      jsonCfg.Routes.Habits,
			Attendance:  jsonCfg.Routes.Attendance,
			Schedule:    jsonCfg.Routes.Schedule,
			Users:       jsonCfg.Routes.Users,
			Assignments: jsonCfg.Routes.Assignments,
			Exams:       jsonCfg.Routes.Exams,
			Seed:        jsonCfg.Routes.Seed,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
