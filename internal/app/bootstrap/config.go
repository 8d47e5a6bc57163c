package bootstrap

import (
	"fmt"
	"os"
	"strconv"

	"github.com/viralforge/mesh/services/financial-rails/M42-transaction-ledger-service/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID               string
	HTTPPort                int
	GRPCPort                int
	WithdrawalDisputePolicy domain.WithdrawalDisputePolicy
	SortSnapshotByClient    bool
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Engine struct {
		WithdrawalDisputePolicy string `yaml:"withdrawal_dispute_policy"`
		SortOutputByClient      *bool  `yaml:"sort_output_by_client"`
	} `yaml:"engine"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:               "M42-Transaction-Ledger-Service",
		HTTPPort:                8080,
		GRPCPort:                9090,
		WithdrawalDisputePolicy: domain.WithdrawalDisputePermissive,
	}
	if raw, err := os.ReadFile(path); err == nil {
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Engine.WithdrawalDisputePolicy != "" {
			cfg.WithdrawalDisputePolicy = domain.WithdrawalDisputePolicy(f.Engine.WithdrawalDisputePolicy)
		}
		if f.Engine.SortOutputByClient != nil {
			cfg.SortSnapshotByClient = *f.Engine.SortOutputByClient
		}
	}
	if v := os.Getenv("WITHDRAWAL_DISPUTE_POLICY"); v != "" {
		cfg.WithdrawalDisputePolicy = domain.WithdrawalDisputePolicy(v)
	}
	cfg.SortSnapshotByClient = envBool("SORT_OUTPUT_BY_CLIENT", cfg.SortSnapshotByClient)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)

	switch cfg.WithdrawalDisputePolicy {
	case domain.WithdrawalDisputePermissive, domain.WithdrawalDisputeStrict:
	default:
		return Config{}, fmt.Errorf("unknown withdrawal dispute policy %q", cfg.WithdrawalDisputePolicy)
	}
	return cfg, nil
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
