package audit_logs

import (
	"time"

	"clientbase-backend/internal/storage"
	"clientbase-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

type AuditLogService struct{}

// WriteAuditLog persists an audit entry. Failures are logged and swallowed:
// an audit write must never fail the mutation it describes.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	accountID *uuid.UUID,
) {
	entry := &AuditLog{
		ID:        uuid.New(),
		UserID:    userID,
		AccountID: accountID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := storage.GetDb().Create(entry).Error; err != nil {
		log.Error("Failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetAccountAuditLogs(
	accountID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := storage.GetDb().
		Table("audit_logs al").
		Select(`al.id, al.user_id, al.account_id, al.message, al.created_at,
			u.email as user_email, u.name as user_name, a.name as account_name`).
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Joins("LEFT JOIN accounts a ON al.account_id = a.id").
		Where("al.account_id = ?", accountID)

	if request.BeforeDate != nil {
		query = query.Where("al.created_at < ?", request.BeforeDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	logs := make([]*AuditLogDTO, 0)
	err := query.
		Order("al.created_at DESC").
		Limit(limit).
		Offset(request.Offset).
		Scan(&logs).Error
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     limit,
		Offset:    request.Offset,
	}, nil
}
