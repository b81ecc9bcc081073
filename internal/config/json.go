// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings such as "30s".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		SeedDemoAccounts bool     `json:"seed_demo_accounts"`
		SignInLatency    Duration `json:"sign_in_latency"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
		LogFile          string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Vault struct {
			Backend       string `json:"backend"`
			DSN           string `json:"dsn"`
			RedisAddress  string `json:"redis_address"`
			RedisPassword string `json:"redis_password"`
			KeyPrefix     string `json:"key_prefix"`
			Key           string `json:"key"`
		} `json:"vault,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mode           string   `json:"mode"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint"`
		OTLPInsecure bool   `json:"otlp_insecure"`
		ServiceName  string `json:"service_name"`
	} `json:"telemetry,omitempty"`
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
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			SeedDemoAccounts: jsonCfg.App.SeedDemoAccounts,
			SignInLatency:    time.Duration(jsonCfg.App.SignInLatency),
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
			LogFile:          jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Vault: Vault{
				Backend:       jsonCfg.Storage.Vault.Backend,
				DSN:           jsonCfg.Storage.Vault.DSN,
				RedisAddress:  jsonCfg.Storage.Vault.RedisAddress,
				RedisPassword: jsonCfg.Storage.Vault.RedisPassword,
				KeyPrefix:     jsonCfg.Storage.Vault.KeyPrefix,
				Key:           jsonCfg.Storage.Vault.Key,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Mode:           jsonCfg.Adapter.Mode,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
			OTLPInsecure: jsonCfg.Telemetry.OTLPInsecure,
			ServiceName:  jsonCfg.Telemetry.ServiceName,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
