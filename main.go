package main

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pivolan/binning_analyzer/config"
)

var bot *tgbotapi.BotAPI

func main() {
	fmt.Println("started")
	cfg := config.GetConfig()

	var err error
	bot, err = tgbotapi.NewBotAPI(cfg.TgToken)
	if err != nil {
		log.Fatal("tg error", err)
	}
	fmt.Println("bot init")

	log.Printf("Authorized on account %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := bot.GetUpdatesChan(u)
	if err != nil {
		log.Fatal("tg updates error", err)
	}

	go func() {
		ttl := time.Duration(cfg.SeriesTTLMinutes) * time.Minute
		for {
			time.Sleep(time.Minute)
			expireSeries(ttl)
		}
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			go handleCommand(bot, update)
		} else if update.Message.Text != "" {
			go handleText(bot, update)
		}
	}
}
