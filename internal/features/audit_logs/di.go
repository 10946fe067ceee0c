package audit_logs

var auditLogService = &AuditLogService{}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
