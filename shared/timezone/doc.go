// Package timezone owns the clock used for record metadata.
//
// The zone comes from APP_TIMEZONE (an IANA name such as "Europe/Lisbon") and is
// loaded when the package is imported. Every created_at and modified_at value is
// taken from Now, and API payloads render them through Format.
package timezone
