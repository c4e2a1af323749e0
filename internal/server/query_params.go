package server

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

const dateOnlyLayout = "2006-01-02"

func pathID(c *gin.Context, name string) (snowflake.ID, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, newValidationError(name, "invalid_id", "invalid id")
	}
	id, err := snowflake.ParseString(raw)
	if err != nil || id == 0 {
		return 0, newValidationError(name, "invalid_id", "invalid id")
	}
	return id, nil
}

func pathIDFromString(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, newValidationError("id", "invalid_id", "invalid id")
	}
	return id, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(dateOnlyLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

