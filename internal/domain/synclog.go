package domain

import "time"

// SyncDirection records which side initiated a data transfer
type SyncDirection string

const (
	SyncDirectionInbound  SyncDirection = "ERP_TO_SMARTMIX"
	SyncDirectionOutbound SyncDirection = "SMARTMIX_TO_ERP"
)

// SyncDataType identifies the payload type of a sync call
type SyncDataType string

const (
	SyncDataMaterial       SyncDataType = "MATERIAL"
	SyncDataMaterialPrice  SyncDataType = "MATERIAL_PRICE"
	SyncDataProductionTask SyncDataType = "PRODUCTION_TASK"
)

// SyncStatus is the outcome of a sync call
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "SUCCESS"
	SyncStatusFailed  SyncStatus = "FAILED"
)

// SyncLog is the audit record written for every ERP webhook call, carrying
// the raw payload for replay and debugging.
type SyncLog struct {
	ID           int64         `json:"id"`
	Direction    SyncDirection `json:"direction"`
	DataType     SyncDataType  `json:"data_type"`
	Payload      string        `json:"payload,omitempty"`
	Status       SyncStatus    `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	SourceIP     string        `json:"source_ip,omitempty"`
	CreatedAt    time.Time     `json:"created_at,omitempty"`
}

// SyncResult summarizes one batch ingestion.
type SyncResult struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
}
