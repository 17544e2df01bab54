package repository

import (
	"fmt"
	"time"

	"quantfolio/internal/db/models/postgres/public/model"
	. "quantfolio/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db qrm.Executable, req model.APIRequest) (*model.APIRequest, error)
	Complete(db qrm.Executable, id uuid.UUID, responseCode int32, duration time.Duration) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Executable, req model.APIRequest) (*model.APIRequest, error) {
	req.APIRequestID = uuid.New()
	req.StartTs = time.Now().UTC()

	query := APIRequest.INSERT(APIRequest.AllColumns).MODEL(req)

	_, err := query.Exec(db)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &req, nil
}

func (h ApiRequestRepositoryHandler) Complete(db qrm.Executable, id uuid.UUID, responseCode int32, duration time.Duration) error {
	durationMs := duration.Milliseconds()
	query := APIRequest.
		UPDATE(APIRequest.ResponseCode, APIRequest.DurationMs).
		SET(responseCode, durationMs).
		WHERE(APIRequest.APIRequestID.EQ(UUID(id)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to complete api request %s: %w", id, err)
	}

	return nil
}
