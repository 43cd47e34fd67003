package sms

import (
	"context"
	"testing"

	"github.com/tenangapp/tenang_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "",
			SecretKey:  "",
			TemplateID: "test-template",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewFromConfig_EnabledWithoutTemplateID(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:    "test-api-key",
			SecretKey: "test-secret-key",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when template ID is missing")
	}
}

func TestNewFromConfig_Enabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "test-api-key",
			SecretKey:  "test-secret-key",
			TemplateID: "test-template",
		},
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if !client.IsEnabled() {
		t.Error("Expected client to be enabled")
	}
}

func TestSendAppointmentReminder_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	err := client.SendAppointmentReminder(context.Background(), "+6281234567890", "Sari", "10:00-10:30")
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSendAppointmentReminder_Validation(t *testing.T) {
	client := &Client{enabled: true, templateID: "test-template"}

	tests := []struct {
		name             string
		phone            string
		psychologistName string
		timeRange        string
	}{
		{
			name:             "empty phone number",
			phone:            "",
			psychologistName: "Sari",
			timeRange:        "10:00-10:30",
		},
		{
			name:             "empty psychologist name",
			phone:            "+6281234567890",
			psychologistName: "",
			timeRange:        "10:00-10:30",
		},
		{
			name:             "empty time range",
			phone:            "+6281234567890",
			psychologistName: "Sari",
			timeRange:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.SendAppointmentReminder(context.Background(), tt.phone, tt.psychologistName, tt.timeRange)
			if err == nil {
				t.Error("Expected error but got nil")
			}
		})
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"enabled client", true},
		{"disabled client", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{enabled: tt.enabled}
			if client.IsEnabled() != tt.enabled {
				t.Errorf("Expected IsEnabled() = %v, got %v", tt.enabled, client.IsEnabled())
			}
		})
	}
}
