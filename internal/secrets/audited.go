package secrets

import (
	"github.com/benaskins/scfg/internal/audit"
)

// AuditedBackend wraps a Backend and records successful operations to the
// audit log. The core store stays log-free; auditing is a decoration the
// CLI layer applies.
type AuditedBackend struct {
	inner Backend
	audit *audit.Logger
	actor string
}

// NewAuditedBackend wraps an existing store with audit logging.
func NewAuditedBackend(inner Backend, auditLog *audit.Logger, actor string) *AuditedBackend {
	return &AuditedBackend{
		inner: inner,
		audit: auditLog,
		actor: actor,
	}
}

func (b *AuditedBackend) Load(account, service string, opts LoadOptions) (any, error) {
	value, err := b.inner.Load(account, service, opts)
	if err != nil {
		return nil, err
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	b.audit.Log(audit.Entry{
		Action:  audit.ActionConfigLoad,
		Account: account,
		Service: service,
		Actor:   b.actor,
		Mirror:  opts.MirrorPath,
	})

	return value, nil
}

func (b *AuditedBackend) Store(account, service, filename string) error {
	if err := b.inner.Store(account, service, filename); err != nil {
		return err
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	b.audit.Log(audit.Entry{
		Action:  audit.ActionConfigStore,
		Account: account,
		Service: service,
		Actor:   b.actor,
	})

	return nil
}

func (b *AuditedBackend) StoreBytes(account, service string, raw []byte) error {
	if err := b.inner.StoreBytes(account, service, raw); err != nil {
		return err
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	b.audit.Log(audit.Entry{
		Action:  audit.ActionConfigStore,
		Account: account,
		Service: service,
		Actor:   b.actor,
	})

	return nil
}

func (b *AuditedBackend) List(account string) ([]Entry, error) {
	entries, err := b.inner.List(account)
	if err != nil {
		return nil, err
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	b.audit.Log(audit.Entry{
		Action:  audit.ActionConfigList,
		Account: account,
		Actor:   b.actor,
	})

	return entries, nil
}

func (b *AuditedBackend) Delete(account, service string) error {
	if err := b.inner.Delete(account, service); err != nil {
		return err
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	b.audit.Log(audit.Entry{
		Action:  audit.ActionConfigDelete,
		Account: account,
		Service: service,
		Actor:   b.actor,
	})

	return nil
}
