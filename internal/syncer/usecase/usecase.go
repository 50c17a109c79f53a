package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/syncer"
	"github.com/oaksmart/pos-ledger/internal/syncer/dto"
)

type syncUseCase struct {
	repo   syncer.Repository
	client syncer.Client
	sem    *semaphore.Weighted
	logger *zap.Logger
}

func NewSyncUseCase(repo syncer.Repository, client syncer.Client, logger *zap.Logger) syncer.UseCase {
	return &syncUseCase{
		repo:   repo,
		client: client,
		sem:    semaphore.NewWeighted(1),
		logger: logger,
	}
}

func (uc *syncUseCase) Sync(ctx context.Context) (*dto.SyncResult, error) {
	// Single-flight guard: the queue must never be read, acted on and
	// deleted by two rounds at once.
	if !uc.sem.TryAcquire(1) {
		return &dto.SyncResult{Status: dto.StatusAlreadyRunning}, nil
	}
	defer uc.sem.Release(1)

	entries, err := uc.repo.ListOutbox(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &dto.SyncResult{Status: dto.StatusNothingToSync}, nil
	}

	req := &syncer.ReconcileRequest{Transactions: make([]model.TransactionPayload, 0, len(entries))}
	batchIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		var payload model.TransactionPayload
		if err := json.Unmarshal([]byte(entry.Payload), &payload); err != nil {
			// A snapshot that no longer decodes can never be delivered;
			// leave it out of the batch so its counter stays honest.
			uc.logger.Error("undecodable outbox payload, skipping",
				zap.String("entry_id", entry.ID),
				zap.String("local_id", entry.LocalID),
				zap.Error(err),
			)
			continue
		}
		req.Transactions = append(req.Transactions, payload)
		batchIDs = append(batchIDs, entry.ID)
	}
	if len(req.Transactions) == 0 {
		return &dto.SyncResult{Status: dto.StatusNothingToSync}, nil
	}

	resp, err := uc.client.Reconcile(ctx, req)
	if err != nil || !resp.OK {
		reason := "authority reported failure"
		if err != nil {
			reason = err.Error()
		} else if resp.Error != "" {
			reason = resp.Error
		}
		if incErr := uc.repo.IncrementAttempts(ctx, batchIDs); incErr != nil {
			return nil, incErr
		}
		uc.logger.Warn("sync round failed", zap.Int("batch", len(batchIDs)), zap.String("reason", reason))
		return &dto.SyncResult{Status: dto.StatusFailed, Reason: reason}, nil
	}

	acked := 0
	for _, ack := range resp.Ack {
		if err := uc.repo.ApplyAck(ctx, ack.LocalID, ack.Status == syncer.AckStatusOK); err != nil {
			return nil, err
		}
		acked++
		if ack.Status != syncer.AckStatusOK {
			uc.logger.Warn("authority rejected transaction",
				zap.String("local_id", ack.LocalID),
				zap.String("error", ack.Error),
			)
		}
	}

	updated := 0
	now := time.Now()
	for _, up := range resp.UpdatedProducts {
		p := &model.Product{
			BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			Barcode:   up.Barcode,
			Name:      up.Name,
			Price:     up.Price,
			Cost:      up.Cost,
			Qty:       up.Qty,
			IsNew:     false,
		}
		if err := uc.repo.MergeProduct(ctx, p); err != nil {
			return nil, err
		}
		updated++
	}

	uc.logger.Info("sync round succeeded", zap.Int("acked", acked), zap.Int("updated_products", updated))
	return &dto.SyncResult{Status: dto.StatusSucceeded, Acked: acked, UpdatedProducts: updated}, nil
}
