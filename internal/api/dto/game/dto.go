package game

type CreateGameRequest struct {
	Squares int   `json:"squares"` // 0 - из конфига
	Coins   int   `json:"coins"`   // 0 - из конфига
	Seed    int64 `json:"seed"`    // 0 - случайный
}

type MoveRequest struct {
	Start    int `json:"start"`    // Клетка с монетой
	Distance int `json:"distance"` // На сколько клеток влево
}

type GameResponse struct {
	ID       string `json:"id"`
	Board    string `json:"board"` // "o" - монета, "_" - пусто
	Squares  int    `json:"squares"`
	Coins    int    `json:"coins"`
	Moves    int    `json:"moves"`
	Turn     int    `json:"turn"` // 1 или 2
	GameOver bool   `json:"game_over"`
	Winner   int    `json:"winner"` // 0 - партия идет
	Seed     int64  `json:"seed"`
}

type MoveResponse struct {
	Legal bool         `json:"legal"`
	Game  GameResponse `json:"game"`
	Error string       `json:"error,omitempty"`
}

type CheckResponse struct {
	Start    int  `json:"start"`
	Distance int  `json:"distance"`
	Legal    bool `json:"legal"`
}
