package models

type Player struct {
	Id          string             `json:"id" pg:",pk"`
	GameId      string             `json:"gameId"`
	Name        string             `json:"name"`
	Character   string             `json:"character"`
	Cash        float64            `json:"cash" pg:",use_zero"`
	Position    int                `json:"position" pg:",use_zero"`
	IsActive    bool               `json:"isActive" pg:",use_zero"`
	Portfolio   map[string]float64 `json:"cryptoPortfolio" pg:"portfolio,type:jsonb"`
	Properties  []int              `json:"properties" pg:"properties,type:jsonb"`
	PlayerOrder int                `json:"playerOrder" pg:",use_zero"`
}

func (p *Player) AddCash(amount float64) {
	p.Cash += amount
}

// SubtractCash debits the player, refusing to push the balance negative.
func (p *Player) SubtractCash(amount float64) bool {
	if p.Cash < amount {
		return false
	}
	p.Cash -= amount
	return true
}

func (p *Player) Holding(crypto string) float64 {
	if p.Portfolio == nil {
		return 0
	}
	return p.Portfolio[crypto]
}
