// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout
//	-seed-demo provision demo accounts
//	-adapter-mode demo or http
//	-adapter-address auth server base address
//	-adapter-timeout client request timeout
//	-sign-in-latency demo verifier latency
//	-vault-backend sqlite, memory or redis
//	-vault-dsn SQLite vault file
//	-vault-key vault secret
//	-redis-address redis host:port
//	-log-level zerolog level
//	-log-file client log file
//	-otlp-endpoint OTLP gRPC collector endpoint
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var seedDemo bool
	var adapterMode string
	var adapterAddress string
	var adapterTimeout time.Duration
	var signInLatency time.Duration
	var vaultBackend string
	var vaultDSN string
	var vaultKey string
	var redisAddress string
	var logLevel string
	var logFile string
	var otlpEndpoint string

	fs := flag.NewFlagSet("yuhu", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&seedDemo, "seed-demo", false, "Provision demo accounts")
	fs.StringVar(&adapterMode, "adapter-mode", "", "Credential verifier: demo or http")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Auth server base address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Auth server request timeout")
	fs.DurationVar(&signInLatency, "sign-in-latency", 0, "Demo verifier latency")
	fs.StringVar(&vaultBackend, "vault-backend", "", "Session vault backend: sqlite, memory or redis")
	fs.StringVar(&vaultDSN, "vault-dsn", "", "Session vault SQLite file")
	fs.StringVar(&vaultKey, "vault-key", "", "Session vault secret")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			SeedDemoAccounts: seedDemo,
			SignInLatency:    signInLatency,
			LogLevel:         logLevel,
			LogFile:          logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Vault: Vault{
				Backend:      vaultBackend,
				DSN:          vaultDSN,
				RedisAddress: redisAddress,
				Key:          vaultKey,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Mode:           adapterMode,
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// Hosts other than "localhost" must be IP addresses; an empty host binds all
// interfaces.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
