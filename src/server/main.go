package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kalexmills/rhyme-hammer/src/rhymehammer"
	"github.com/kalexmills/rhyme-hammer/src/rhymehammer/db"
	"github.com/spf13/viper"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	conf := readConfig()

	DB, err := sql.Open("sqlite3", conf.DBPath)
	if err != nil {
		log.Fatalf("could not open database %s: %v", conf.DBPath, err)
	}
	defer DB.Close()
	if err := db.BootstrapDB(DB); err != nil {
		log.Fatalf("could not bootstrap database %s: %v", conf.DBPath, err)
	}

	rh := rhymehammer.NewRhymeHammer(conf, DB)
	if err := rh.Open(); err != nil {
		log.Fatalf("fail error opening bot: %v", err)
	}

	log.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	if err := rh.Close(); err != nil {
		log.Println("error closing session,", err)
	}
}

func readConfig() rhymehammer.Config {
	v := viper.GetViper()
	rhymehammer.SetDefaults(v)

	v.SetEnvPrefix("RHYME_HAMMER")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath("/etc/rhymehammer")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	if err != nil {
		log.Println("no config file found, using defaults,", err)
	}

	conf, err := rhymehammer.ReadConfig(v)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if conf.Token == "" {
		log.Fatalf("no bot token configured; set RHYME_HAMMER_TOKEN or token in config")
	}
	return conf
}
