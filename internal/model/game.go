package model

import (
	"time"

	"silverdollar/internal/game/strip"
)

// Игроки ходят по очереди
const (
	FirstPlayer  = 1
	SecondPlayer = 2
)

type NewGame struct {
	Squares int
	Coins   int
	Seed    int64 // 0 - случайный сид
}

type Move struct {
	GameID   string
	Start    int
	Distance int
}

type MoveCheck struct {
	GameID   string
	Start    int
	Distance int
	Legal    bool
}

// GameSession - живая партия в памяти. Strip принадлежит только этой партии
type GameSession struct {
	ID        string
	UserID    int
	Seed      int64
	Strip     *strip.Strip
	Turn      int // Чей ход
	Winner    int // 0 - пока нет победителя
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Снимок партии для ответа клиенту
type Game struct {
	ID       string
	Board    string
	Squares  int
	Coins    int
	Moves    int
	Turn     int
	GameOver bool
	Winner   int
	Seed     int64
}
