// Package timezone pins wall-clock reads to APP_TIMEZONE.
//
// Reporting windows default their end to Today, so the day boundary follows the configured
// zone rather than the host clock. Names must come from the IANA database ("Asia/Karachi",
// "Europe/London"); anything else falls back to UTC.
package timezone
