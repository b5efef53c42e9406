package models

import "time"

// ChatSeries - последний числовой ряд, присланный в чат.
type ChatSeries struct {
	Values    []float64
	UpdatedAt time.Time
}

// ChatSettings - настройки разбиения, действующие для чата.
type ChatSettings struct {
	Side   string   // left / right
	Strict bool     // qcut: ошибка вместо схлопывания совпавших границ
	Labels []string // подписи корзин для следующего разбиения
}

// BinRow - одна строка таблицы с результатом разбиения.
type BinRow struct {
	Index    int
	Interval string
	Label    string
	Count    int
	Percent  float64
}
