package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/klauspost/compress/zstd"

	"instock/internal/domain/audit"
)

const auditTable = "audit_logs"

// CompressionAlgo specifies the compression algorithm used for a payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// defaultCompressThreshold is the payload size above which changes are
// stored zstd-compressed.
const defaultCompressThreshold = 10 * 1024 // 10KB

// AuditEntry represents a single audit log row.
type AuditEntry struct {
	ID                int64           `db:"id"`
	EntityType        string          `db:"entity_type"`
	EntityID          int64           `db:"entity_id"`
	Action            audit.Action    `db:"action"`
	Changes           json.RawMessage `db:"changes"`
	ChangesCompressed []byte          `db:"changes_compressed"`
	CompressionAlgo   CompressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditStore persists the mutation audit trail. It implements audit.Recorder.
type AuditStore struct {
	db                Querier
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewAuditStore creates a new audit store.
func NewAuditStore(db Querier) (*AuditStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditStore{
		db:                db,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: defaultCompressThreshold,
	}, nil
}

// Record persists one audit entry. Large change payloads are stored
// zstd-compressed.
func (s *AuditStore) Record(ctx context.Context, entityType string, entityID int64, action audit.Action, changes any) error {
	entry := AuditEntry{
		EntityType:      entityType,
		EntityID:        entityID,
		Action:          action,
		CompressionAlgo: CompressionNone,
		CreatedAt:       time.Now().UTC(),
	}

	if changes != nil {
		payload, err := json.Marshal(changes)
		if err != nil {
			return fmt.Errorf("marshal changes: %w", err)
		}
		if len(payload) > s.compressThreshold {
			entry.ChangesCompressed = s.encoder.EncodeAll(payload, nil)
			entry.CompressionAlgo = CompressionZstd
		} else {
			entry.Changes = payload
		}
	}

	ctx, span := startSpan(ctx, "insert", auditTable)
	defer span.End()

	sql, args, err := builder().
		Insert(auditTable).
		SetMap(map[string]any{
			"entity_type":        entry.EntityType,
			"entity_id":          entry.EntityID,
			"action":             entry.Action,
			"changes":            entry.Changes,
			"changes_compressed": entry.ChangesCompressed,
			"compression_algo":   entry.CompressionAlgo,
			"created_at":         entry.CreatedAt,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// History retrieves the audit trail for an entity, newest first.
// Compressed payloads are transparently decompressed.
func (s *AuditStore) History(ctx context.Context, entityType string, entityID int64, limit int) ([]AuditEntry, error) {
	ctx, span := startSpan(ctx, "select", auditTable)
	defer span.End()

	sql, args, err := builder().
		Select("id", "entity_type", "entity_id", "action",
			"changes", "changes_compressed", "compression_algo", "created_at").
		From(auditTable).
		Where(squirrel.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	entries := []AuditEntry{}
	if err := pgxscan.Select(ctx, s.db, &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("query audit history: %w", err)
	}

	for i := range entries {
		e := &entries[i]
		if e.CompressionAlgo == CompressionZstd && len(e.ChangesCompressed) > 0 {
			decompressed, err := s.decoder.DecodeAll(e.ChangesCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
			e.Changes = decompressed
			e.ChangesCompressed = nil
		}
	}

	return entries, nil
}
