package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
)

const MAX_PAGE_SIZE = 100

// PageParams holds common list pagination parameters
type PageParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParsePageParams parses and caps pagination parameters
func ParsePageParams(c *gin.Context) (*PageParams, error) {
	var params PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit < 1 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	return &params, nil
}

// GeoSearchQueryParams holds query parameters for GET /geo
type GeoSearchQueryParams struct {
	PageParams
	Term       string `form:"q"`
	Level      string `form:"level"`
	ParentCode string `form:"parent"`
}

// ParseGeoSearchQuery parses query parameters for GET /geo
func ParseGeoSearchQuery(c *gin.Context) (*store.GeoSearchFilter, error) {
	var params GeoSearchQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit < 1 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	filter := &store.GeoSearchFilter{
		Term:   params.Term,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Level != "" {
		level := domain.GeoLevel(params.Level)
		switch level {
		case domain.GeoLevelRegion, domain.GeoLevelProvince, domain.GeoLevelCity, domain.GeoLevelBarangay:
			filter.Level = &level
		default:
			return nil, domain.ErrInvalidArgument
		}
	}
	if params.ParentCode != "" {
		filter.ParentCode = &params.ParentCode
	}
	return filter, nil
}

// ChangesQueryParams holds query parameters for GET /changes
type ChangesQueryParams struct {
	PageParams
	SubjectType string `form:"subject_type"`
	SubjectID   string `form:"subject_id"`
}

// ParseChangesQuery parses query parameters for GET /changes
func ParseChangesQuery(c *gin.Context) (*store.ChangesFilter, error) {
	var params ChangesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit < 1 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	filter := &store.ChangesFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.SubjectType != "" {
		subject := domain.ChangeSubject(params.SubjectType)
		switch subject {
		case domain.ChangeSubjectHousehold, domain.ChangeSubjectResident, domain.ChangeSubjectMembership:
			filter.SubjectType = &subject
		default:
			return nil, domain.ErrInvalidArgument
		}
	}
	if params.SubjectID != "" {
		filter.SubjectID = &params.SubjectID
	}
	return filter, nil
}
