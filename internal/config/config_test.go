package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"EMPLOYEE_NAME", "EMPLOYEE_TITLE", "EMPLOYEE_PHONE",
		"COMPANY_ADDRESS1", "COMPANY_ADDRESS2",
		"URENSTAAT_DB", "EXPORT_DIR", "LOGO_PATH", "SIGNATURE_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.EmployeeName != "John Doe" {
		t.Errorf("EmployeeName = %q, want John Doe", cfg.EmployeeName)
	}
	if cfg.EmployeeTitle != "Enterprise Architect" {
		t.Errorf("EmployeeTitle = %q, want Enterprise Architect", cfg.EmployeeTitle)
	}
	if cfg.EmployeePhone != "000000000" {
		t.Errorf("EmployeePhone = %q, want 000000000", cfg.EmployeePhone)
	}
	if cfg.ExportDir != "." {
		t.Errorf("ExportDir = %q, want .", cfg.ExportDir)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath should have a default")
	}
	if cfg.LogoPath != "logo.jpg" || cfg.SignaturePath != "signature.png" {
		t.Errorf("image paths = %q, %q", cfg.LogoPath, cfg.SignaturePath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EMPLOYEE_NAME", "Jane Roe")
	t.Setenv("EMPLOYEE_PHONE", "0612345678")
	t.Setenv("URENSTAAT_DB", "/tmp/test.db")
	t.Setenv("EXPORT_DIR", "/tmp/exports")

	cfg := Load()

	if cfg.EmployeeName != "Jane Roe" {
		t.Errorf("EmployeeName = %q", cfg.EmployeeName)
	}
	if cfg.EmployeePhone != "0612345678" {
		t.Errorf("EmployeePhone = %q", cfg.EmployeePhone)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Errorf("ExportDir = %q", cfg.ExportDir)
	}
}
