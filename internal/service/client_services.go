package service

import (
	"github.com/ebelikov/lotus/internal/adapter"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
)

// ClientServices bundles the client-side service layer for the terminal UI.
type ClientServices struct {
	AuthService    ClientAuthService
	PointsService  ClientPointsService
	ProfileService ClientProfileService
	StatsService   ClientStatsService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		PointsService:  NewClientPointsService(serverAdapter, storages.SessionLog, logger),
		ProfileService: NewClientProfileService(serverAdapter, logger),
		StatsService:   NewClientStatsService(storages.SessionLog, logger),
	}
}
