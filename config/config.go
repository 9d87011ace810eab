// Package config loads the connector configuration: where the supplier
// API lives, the credentials to sign with, the agency identities on
// both ends and the account settings that shape outbound orders.
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/PTFS-Europe/mod-ill-connector-bldss/auth"
	"github.com/PTFS-Europe/mod-ill-connector-bldss/iso18626"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Supplier  SupplierConfig  `mapstructure:"supplier"`
	Requester RequesterConfig `mapstructure:"requester"`
	Settings  Settings        `mapstructure:"settings"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// SupplierConfig identifies the supplier API instance and the account
// this connector signs as.
type SupplierConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	ApiApplication     string `mapstructure:"api_application"`
	ApiApplicationAuth string `mapstructure:"api_application_auth"`
	ApiKey             string `mapstructure:"api_key"`
	ApiKeyAuth         string `mapstructure:"api_key_auth"`
	AgencyIdType       string `mapstructure:"agency_id_type"`
	AgencyIdValue      string `mapstructure:"agency_id_value"`
}

// RequesterConfig describes the requesting-agency side: where the
// supplier posts orderline updates to and where translated
// notifications are forwarded.
type RequesterConfig struct {
	CallbackURL   string `mapstructure:"callback_url"`
	UpdateURL     string `mapstructure:"update_url"`
	AgencyIdType  string `mapstructure:"agency_id_type"`
	AgencyIdValue string `mapstructure:"agency_id_value"`
}

// Settings is the supplier account configuration that shapes orders.
type Settings struct {
	LibraryPrivilege bool `mapstructure:"library_privilege"`
	OutsideUK        bool `mapstructure:"outside_uk"`
}

// Credentials returns the supplier credentials in signing form.
func (c *Config) Credentials() auth.Credentials {
	return auth.Credentials{
		Application:     c.Supplier.ApiApplication,
		ApplicationAuth: c.Supplier.ApiApplicationAuth,
		Key:             c.Supplier.ApiKey,
		KeyAuth:         c.Supplier.ApiKeyAuth,
	}
}

func (c *Config) SupplierAgencyId() iso18626.TypeAgencyId {
	return iso18626.TypeAgencyId{AgencyIdType: c.Supplier.AgencyIdType, AgencyIdValue: c.Supplier.AgencyIdValue}
}

func (c *Config) RequesterAgencyId() iso18626.TypeAgencyId {
	return iso18626.TypeAgencyId{AgencyIdType: c.Requester.AgencyIdType, AgencyIdValue: c.Requester.AgencyIdValue}
}

// LoadConfig reads bldss-connector.yaml if present, then the
// environment (BLDSS_ prefix, dots become underscores), then defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("bldss-connector")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	v.SetEnvPrefix("bldss")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8082)
	v.SetDefault("supplier.base_url", "https://apitest.bldss.bl.uk")
	v.SetDefault("supplier.agency_id_type", "ISIL")
	v.SetDefault("supplier.agency_id_value", "GB-Uk")
	v.SetDefault("requester.agency_id_type", "ISIL")
	v.SetDefault("settings.library_privilege", false)
	v.SetDefault("settings.outside_uk", false)

	// Secrets and URLs have no usable defaults but still need to be
	// visible to Unmarshal when they arrive via the environment.
	for _, key := range []string{
		"supplier.api_application", "supplier.api_application_auth",
		"supplier.api_key", "supplier.api_key_auth",
		"requester.callback_url", "requester.update_url",
		"requester.agency_id_value",
	} {
		v.SetDefault(key, "")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Info("no config file found, using environment and defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.Requester.CallbackURL == "" {
		return nil, errors.New("requester callback URL is required")
	}
	return &config, nil
}
