// telegram_handler.go
package main

import (
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pivolan/binning_analyzer/binning"
	"github.com/pivolan/binning_analyzer/config"
	"github.com/pivolan/binning_analyzer/domain/models"
)

// chatResult - последнее разбиение и ряд, по которому оно построено.
type chatResult struct {
	result *binning.Result
	series []float64
}

var (
	stateMu       = &sync.Mutex{}
	currentSeries = map[int64]*models.ChatSeries{}
	chatSettings  = map[int64]*models.ChatSettings{}
	lastResults   = map[int64]*chatResult{}
)

const welcomeText = `Привет! 👋

Я разбиваю числовые ряды на интервалы (корзины).

Что я умею:
- Равноширинные корзины, как pd.cut: /cut 4 или явные границы /cut 18 30 45 60 75
- Квантильные корзины равной наполненности, как pd.qcut: /qcut 4
- Подписи корзин: /labels Молодые, Взрослые, Зрелые, Старшие
- Сторона закрытия интервалов: /side left или /side right
- Строгий режим для совпавших квантилей: /strict on
- Состав корзины: /dist_<подпись> после разбиения

Как со мной работать:
1. Отправьте последовательность чисел в чат
2. Я сразу покажу разбиение по умолчанию
3. Дальше уточняйте командами выше

Примеры отправки чисел:
- "1 2 3 4 5"
- "1,2,3,4,5"
- "1\n2\nnan\n4\n5" (nan, null, none, na и - считаются пропусками)
`

// settingsFor возвращает настройки чата, создавая их при первом обращении.
// Вызывающий держит stateMu.
func settingsFor(chatID int64) *models.ChatSettings {
	settings, ok := chatSettings[chatID]
	if !ok {
		settings = &models.ChatSettings{Side: string(binning.SideRight)}
		chatSettings[chatID] = settings
	}
	return settings
}

func handleText(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	message := update.Message

	// Проверяем, есть ли числа в сообщении
	series := ExtractSeries(message.Text)
	if len(series) == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
		bot.Send(msg)
		return
	}

	stateMu.Lock()
	currentSeries[message.Chat.ID] = &models.ChatSeries{Values: series, UpdatedAt: time.Now()}
	settings := settingsFor(message.Chat.ID)
	side := binning.Side(settings.Side)
	stateMu.Unlock()

	// Сразу показываем разбиение по умолчанию, без подписей:
	// количество корзин пользователь еще не выбирал
	cfg := config.GetConfig()
	result, err := binning.EqualWidth(series, binning.Count(cfg.DefaultBins), binning.WidthOptions{Side: side})
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, binningErrorMsg(err))
		bot.Send(msg)
		return
	}

	stateMu.Lock()
	lastResults[message.Chat.ID] = &chatResult{result: result, series: series}
	stateMu.Unlock()

	reply := GenerateBinSummaryMsg(result) +
		"\nУточните разбиение: /cut N, /qcut N, /labels a, b, c"
	msg := tgbotapi.NewMessage(message.Chat.ID, reply)
	bot.Send(msg)
}

// expireSeries забывает ряды чатов, молчащих дольше ttl.
func expireSeries(ttl time.Duration) {
	stateMu.Lock()
	defer stateMu.Unlock()
	for chatID, series := range currentSeries {
		if time.Now().After(series.UpdatedAt.Add(ttl)) {
			delete(currentSeries, chatID)
			delete(lastResults, chatID)
			delete(chatSettings, chatID)
		}
	}
}
