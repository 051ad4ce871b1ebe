package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port             int
	DefaultAlgorithm string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig reads config.yaml from the working directory once.
// A missing file is fine; the defaults below apply.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.default_algorithm", "power_aware")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalln(err)
			}
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.DefaultAlgorithm = viper.GetString("scheduler.default_algorithm")
	})

	return config
}
