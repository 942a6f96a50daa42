package vip

import (
	"errors"

	"festtix/internal/eventdays"
)

var (
	ErrDayNotFound         = eventdays.ErrDayNotFound
	ErrTableNotFound       = errors.New("vip table not found")
	ErrReservationNotFound = errors.New("vip reservation not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotEditable    = errors.New("order can no longer be changed")
	ErrInvalidSelection    = errors.New("invalid reservation request")
	ErrSeatsExceedTickets  = errors.New("more seats requested than VIP tickets on the order")
	ErrTableUnavailable    = errors.New("vip table does not have enough free seats")
	ErrReservationLocked   = errors.New("reservation can no longer be cancelled")
	ErrOrderLookupMissing  = errors.New("order lookup not configured")
)
