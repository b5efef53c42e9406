// telegram_command_handler.go
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pivolan/binning_analyzer/binning"
	"github.com/pivolan/binning_analyzer/config"
	"github.com/pivolan/binning_analyzer/domain/models"
	"github.com/pivolan/go_utils"
)

func handleCommand(api *tgbotapi.BotAPI, update tgbotapi.Update) {
	// Получаем полную команду (без слеша)
	fullCommand := update.Message.Command()
	args := strings.TrimSpace(update.Message.CommandArguments())

	// Префикс команды состава корзины
	distPrefix := "dist_"

	switch {
	case fullCommand == "cut":
		handleCut(api, update, args)
	case fullCommand == "qcut":
		handleQcut(api, update, args)
	case fullCommand == "labels":
		handleLabels(api, update, args)
	case fullCommand == "side":
		handleSide(api, update, args)
	case fullCommand == "strict":
		handleStrict(api, update, args)
	case strings.HasPrefix(fullCommand, distPrefix):
		slug := strings.TrimPrefix(fullCommand, distPrefix)
		if slug == "" {
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Укажите подпись корзины после dist_")
			api.Send(msg)
			return
		}
		handleDist(api, update, slug)
	case fullCommand == "start":
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, welcomeText)
		api.Send(msg)
	default:
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Неизвестная команда. Используйте: /cut, /qcut, /labels, /side, /strict или /dist_<подпись>")
		api.Send(msg)
	}
}

// seriesFor достает ряд чата и снимок его настроек; false, если чисел еще
// не присылали. Наружу уходит копия настроек, а не живой указатель:
// обработчики команд пишут в настройки под stateMu из параллельных горутин,
// читать их после отпускания мьютекса нельзя.
func seriesFor(chatID int64) ([]float64, models.ChatSettings, bool) {
	stateMu.Lock()
	defer stateMu.Unlock()
	series, exists := currentSeries[chatID]
	if !exists {
		return nil, models.ChatSettings{}, false
	}
	series.UpdatedAt = time.Now()

	settings := *settingsFor(chatID)
	if settings.Labels != nil {
		labels := make([]string, len(settings.Labels))
		copy(labels, settings.Labels)
		settings.Labels = labels
	}
	return series.Values, settings, true
}

func handleCut(api *tgbotapi.BotAPI, update tgbotapi.Update, args string) {
	chatID := update.Message.Chat.ID
	series, settings, exists := seriesFor(chatID)
	if !exists {
		msg := tgbotapi.NewMessage(chatID, "Сначала отправьте числа в чат")
		api.Send(msg)
		return
	}

	spec, err := parseBinSpec(args)
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, err.Error())
		api.Send(msg)
		return
	}

	result, err := binning.EqualWidth(series, spec, binning.WidthOptions{
		Side:   binning.Side(settings.Side),
		Labels: settings.Labels,
	})
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, binningErrorMsg(err))
		api.Send(msg)
		return
	}

	stateMu.Lock()
	lastResults[chatID] = &chatResult{result: result, series: series}
	stateMu.Unlock()

	msg := tgbotapi.NewMessage(chatID, GenerateBinSummaryMsg(result))
	api.Send(msg)
}

func handleQcut(api *tgbotapi.BotAPI, update tgbotapi.Update, args string) {
	chatID := update.Message.Chat.ID
	series, settings, exists := seriesFor(chatID)
	if !exists {
		msg := tgbotapi.NewMessage(chatID, "Сначала отправьте числа в чат")
		api.Send(msg)
		return
	}

	groups := config.GetConfig().DefaultBins
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil {
			msg := tgbotapi.NewMessage(chatID, "Укажите количество групп числом: /qcut 4")
			api.Send(msg)
			return
		}
		groups = n
	}

	policy := binning.CollapseDuplicates
	if settings.Strict {
		policy = binning.RaiseOnDuplicate
	}
	result, err := binning.EqualFrequency(series, groups, binning.FrequencyOptions{
		OnDuplicate: policy,
		Labels:      settings.Labels,
	})
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, binningErrorMsg(err))
		api.Send(msg)
		return
	}

	stateMu.Lock()
	lastResults[chatID] = &chatResult{result: result, series: series}
	stateMu.Unlock()

	reply := GenerateBinSummaryMsg(result)
	if result.Bins() < groups {
		reply += fmt.Sprintf("\nГраницы совпали, корзин получилось %d вместо %d", result.Bins(), groups)
	}
	msg := tgbotapi.NewMessage(chatID, reply)
	api.Send(msg)
}

func handleLabels(api *tgbotapi.BotAPI, update tgbotapi.Update, args string) {
	chatID := update.Message.Chat.ID
	labels := ParseLabels(args)

	stateMu.Lock()
	settings := settingsFor(chatID)
	settings.Labels = labels
	stateMu.Unlock()

	if labels == nil {
		msg := tgbotapi.NewMessage(chatID, "Подписи сброшены, корзины получат интервалы вместо имен")
		api.Send(msg)
		return
	}
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Подписей сохранено: %d. Теперь /cut %d или /qcut %d", len(labels), len(labels), len(labels)))
	api.Send(msg)
}

func handleSide(api *tgbotapi.BotAPI, update tgbotapi.Update, args string) {
	chatID := update.Message.Chat.ID
	side := strings.ToLower(args)
	if !go_utils.InArray(side, []string{"left", "right"}) {
		msg := tgbotapi.NewMessage(chatID, "Укажите сторону закрытия: /side left или /side right")
		api.Send(msg)
		return
	}

	stateMu.Lock()
	settingsFor(chatID).Side = side
	stateMu.Unlock()

	msg := tgbotapi.NewMessage(chatID, "Сторона закрытия интервалов: "+side)
	api.Send(msg)
}

func handleStrict(api *tgbotapi.BotAPI, update tgbotapi.Update, args string) {
	chatID := update.Message.Chat.ID
	mode := strings.ToLower(args)
	if !go_utils.InArray(mode, []string{"on", "off"}) {
		msg := tgbotapi.NewMessage(chatID, "Укажите режим: /strict on или /strict off")
		api.Send(msg)
		return
	}

	stateMu.Lock()
	settingsFor(chatID).Strict = mode == "on"
	stateMu.Unlock()

	reply := "Совпавшие квантильные границы схлопываются"
	if mode == "on" {
		reply = "Совпавшие квантильные границы теперь ошибка"
	}
	msg := tgbotapi.NewMessage(chatID, reply)
	api.Send(msg)
}

func handleDist(api *tgbotapi.BotAPI, update tgbotapi.Update, slug string) {
	chatID := update.Message.Chat.ID

	stateMu.Lock()
	last, exists := lastResults[chatID]
	stateMu.Unlock()
	if !exists {
		msg := tgbotapi.NewMessage(chatID, "Сначала постройте разбиение: отправьте числа или /cut")
		api.Send(msg)
		return
	}

	slugs := SlugifyLabels(last.result.Labels)
	binIndex := -1
	for i, s := range slugs {
		if s == slug {
			binIndex = i
			break
		}
	}
	if binIndex == -1 {
		msg := tgbotapi.NewMessage(chatID, "Нет корзины с подписью "+slug)
		api.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, generateDistMsg(last, binIndex))
	api.Send(msg)
}

// Сколько значений корзины показываем в ответе
const distValuesLimit = 100

// generateDistMsg форматирует состав корзины: полное количество значений
// и не больше distValuesLimit самих значений.
func generateDistMsg(last *chatResult, binIndex int) string {
	total := last.result.Counts()[binIndex]

	values := make([]string, 0, distValuesLimit)
	for i, assignment := range last.result.Assignments {
		if assignment != binIndex {
			continue
		}
		values = append(values, strconv.FormatFloat(last.series[i], 'f', -1, 64))
		if len(values) >= distValuesLimit {
			break
		}
	}

	reply := fmt.Sprintf("Корзина %s %s: %d значений", last.result.Labels[binIndex], last.result.Intervals[binIndex], total)
	if len(values) > 0 {
		reply += "\n" + strings.Join(values, ", ")
		if total > len(values) {
			reply += fmt.Sprintf("\nПоказаны первые %d", len(values))
		}
	}
	return reply
}

// parseBinSpec разбирает аргумент /cut: одно целое - количество корзин,
// несколько чисел - явные границы.
func parseBinSpec(args string) (binning.BinSpec, error) {
	fields := strings.Fields(args)
	switch {
	case len(fields) == 0:
		return binning.Count(config.GetConfig().DefaultBins), nil
	case len(fields) == 1:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return binning.BinSpec{}, errors.New("Укажите количество корзин числом: /cut 4")
		}
		return binning.Count(n), nil
	default:
		edges := make([]float64, len(fields))
		for i, field := range fields {
			edge, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return binning.BinSpec{}, errors.New("Границы должны быть числами: /cut 18 30 45 60 75")
			}
			edges[i] = edge
		}
		return binning.Boundaries(edges), nil
	}
}

// binningErrorMsg превращает ошибки движка в понятные сообщения.
func binningErrorMsg(err error) string {
	switch {
	case errors.Is(err, binning.ErrInvalidCount):
		return "Количество корзин должно быть положительным"
	case errors.Is(err, binning.ErrDegenerateRange):
		return "Все значения одинаковы или пусты, разбивать нечего"
	case errors.Is(err, binning.ErrDegenerateQuantile):
		return "Квантильные границы совпали. Выключите строгий режим: /strict off"
	case errors.Is(err, binning.ErrLabelCountMismatch):
		return "Количество подписей не совпадает с количеством корзин, поправьте /labels"
	case errors.Is(err, binning.ErrInvalidBoundary):
		return "Границы должны строго возрастать"
	}
	return "Не получилось разбить ряд: " + err.Error()
}
