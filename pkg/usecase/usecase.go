package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/reflect-lab/stella/pkg/domain/interfaces"
	"github.com/reflect-lab/stella/pkg/repository/memory"
	"github.com/reflect-lab/stella/pkg/service/scoring"
	"github.com/reflect-lab/stella/pkg/service/similarity"
)

var (
	ErrStorageNotConfigured = goerr.New("storage client not configured")
)

type UseCases struct {
	// adapters and services
	repository    interfaces.Repository
	storageClient interfaces.StorageClient
	similarity    similarity.Service

	// configs
	defaultWeights scoring.Weights
	storagePrefix  string
}

var _ interfaces.RecordUsecases = &UseCases{}
var _ interfaces.InsightUsecases = &UseCases{}
var _ interfaces.ConstellationUsecases = &UseCases{}
var _ interfaces.DraftUsecases = &UseCases{}
var _ interfaces.TransferUsecases = &UseCases{}

type Option func(*UseCases)

func WithRepository(repository interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repository = repository
	}
}

func WithStorageClient(storageClient interfaces.StorageClient) Option {
	return func(u *UseCases) {
		u.storageClient = storageClient
	}
}

// WithDefaultWeights sets the ranking weights applied when a caller does
// not supply its own.
func WithDefaultWeights(weights scoring.Weights) Option {
	return func(u *UseCases) {
		u.defaultWeights = weights
	}
}

// WithStoragePrefix prefixes every backup object name.
func WithStoragePrefix(storagePrefix string) Option {
	return func(u *UseCases) {
		u.storagePrefix = storagePrefix
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{
		repository:     memory.New(),
		similarity:     similarity.NewService(),
		defaultWeights: scoring.DefaultWeights(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}
