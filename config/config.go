package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Bank struct {
		// SavingsInterestRate is the default rate for the interest/fees
		// sweep when the request does not override it (0.02 = 2%).
		SavingsInterestRate float64 `mapstructure:"savings_interest_rate"`
		// CheckingMonthlyFee is the default fee debited from checking
		// accounts during the sweep.
		CheckingMonthlyFee float64 `mapstructure:"checking_monthly_fee"`
	} `mapstructure:"bank"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
