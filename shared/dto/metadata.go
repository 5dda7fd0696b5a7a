package dto

import (
	"luxhome/shared/constant"
	"luxhome/shared/model"
	"luxhome/shared/timezone"
)

// Metadata is the audit block of API payloads, with RFC 3339 timestamps in the record zone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(meta.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(meta.ModifiedAt, constant.DateFormat),
		CreatedBy:  meta.CreatedBy,
		ModifiedBy: meta.ModifiedBy,
	}
}
