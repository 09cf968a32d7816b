package cmd

import (
	"fmt"
	"strings"

	"laundrytrack/internal/core/domain/model/order"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost             string
	KafkaOrderStatusTopic string

	// TagUniverse is the comma-separated list of physical NFC tag IDs the
	// facility owns. The pool is seeded from it at startup.
	TagUniverse string

	// TransitionPolicy names the status transition policy: "permissive"
	// (the default) or "strict".
	TransitionPolicy string

	// RequireStaffForStatusUpdate gates status transitions to admin-capable
	// roles when "true". The default lets any authenticated caller move an
	// order through the pipeline.
	RequireStaffForStatusUpdate string
}

// PostgresDSN builds the connection string for the gorm postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// TagUniverseList splits the configured tag universe into individual tag IDs.
func (c Config) TagUniverseList() []string {
	if strings.TrimSpace(c.TagUniverse) == "" {
		return nil
	}

	parts := strings.Split(c.TagUniverse, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// Policy resolves the configured transition policy name.
// Unknown names fall back to the permissive policy.
func (c Config) Policy() order.TransitionPolicy {
	if c.TransitionPolicy == "strict" {
		return order.StrictTransitions()
	}
	return order.PermissiveTransitions()
}

// RequireStaff reports whether status updates are restricted to staff.
func (c Config) RequireStaff() bool {
	return c.RequireStaffForStatusUpdate == "true"
}
