package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Сервис вызывает Validate перед передачей команды в движок.
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx != 0 && p.Dy != 0 {
		return errors.New("diagonal movement is not allowed")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p HeatPayload) Validate() error {
	if p.Amount <= 0 {
		return errors.New("heat amount must be positive")
	}
	return nil
}
