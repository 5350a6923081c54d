package config_test

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jogos-org/jogos/internal/config"
)

var _ = Describe("Configuration", func() {
	It("should apply the defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		Expect(cfg.DatabaseName).To(Equal("jogos.duckdb"))
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.LogFormat).To(Equal("console"))
		Expect(cfg.Server.Mode).To(Equal("dev"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Metadata.Workers).To(Equal(2))
		Expect(cfg.Metadata.Timeout).To(Equal(15 * time.Second))
	})

	It("should let options override defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithDataFolder("/data"),
			config.WithServer(*config.NewServerWithOptionsAndDefaults(config.WithHTTPPort(9000))),
		)

		Expect(cfg.Server.HTTPPort).To(Equal(9000))
		Expect(cfg.Server.Mode).To(Equal("dev"))
		Expect(cfg.DatabasePath()).To(Equal(filepath.Join("/data", "jogos.duckdb")))
		Expect(cfg.PreferencesPath()).To(Equal(filepath.Join("/data", "preferences.yaml")))
	})

	It("should place covers under the data folder unless set", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithDataFolder("/data"))
		Expect(cfg.CoversPath()).To(Equal(filepath.Join("/data", "covers")))

		cfg = cfg.WithOptions(config.WithCoversFolder("/elsewhere"))
		Expect(cfg.CoversPath()).To(Equal("/elsewhere"))
	})

	It("should not expose the client secret in the debug map", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithMetadata(*config.NewMetadataWithOptionsAndDefaults(
				config.WithClientID("id"),
				config.WithClientSecret("hunter2"),
			)),
		)

		Expect(cfg.Metadata.DebugMap()["ClientSecret"]).NotTo(Equal("hunter2"))
		Expect(cfg.Metadata.DebugMap()).To(HaveKey("ClientID"))
	})
})
