// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "psychologist_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "completed", "cancelled"}, Default: "pending"},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"video", "chat"}, Default: "video"},
		{Name: "video_room_url", Type: field.TypeString, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_psychologist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[7]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_appointment_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[1]},
			},
			{
				Name:    "message_sender_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_pushed", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_account_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// NotificationPrefsColumns holds the columns for the "notification_prefs" table.
	NotificationPrefsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "message_push", Type: field.TypeBool, Default: true},
		{Name: "appointment_push", Type: field.TypeBool, Default: true},
		{Name: "appointment_sms", Type: field.TypeBool, Default: false},
		{Name: "appointment_email", Type: field.TypeBool, Default: false},
	}
	// NotificationPrefsTable holds the schema information for the "notification_prefs" table.
	NotificationPrefsTable = &schema.Table{
		Name:       "notification_prefs",
		Columns:    NotificationPrefsColumns,
		PrimaryKey: []*schema.Column{NotificationPrefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationpref_account_id",
				Unique:  true,
				Columns: []*schema.Column{NotificationPrefsColumns[3]},
			},
		},
	}
	// PsychologistsColumns holds the columns for the "psychologists" table.
	PsychologistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString, Size: 255},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 320},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PsychologistsTable holds the schema information for the "psychologists" table.
	PsychologistsTable = &schema.Table{
		Name:       "psychologists",
		Columns:    PsychologistsColumns,
		PrimaryKey: []*schema.Column{PsychologistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "psychologist_email",
				Unique:  true,
				Columns: []*schema.Column{PsychologistsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 320},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "locale", Type: field.TypeString, Size: 8, Default: "id"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// UserDevicesColumns holds the columns for the "user_devices" table.
	UserDevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "account_role", Type: field.TypeEnum, Enums: []string{"patient", "psychologist"}},
		{Name: "device_token", Type: field.TypeString, Size: 512},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"web", "android", "ios"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UserDevicesTable holds the schema information for the "user_devices" table.
	UserDevicesTable = &schema.Table{
		Name:       "user_devices",
		Columns:    UserDevicesColumns,
		PrimaryKey: []*schema.Column{UserDevicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userdevice_account_id_device_token",
				Unique:  true,
				Columns: []*schema.Column{UserDevicesColumns[2], UserDevicesColumns[4]},
			},
			{
				Name:    "userdevice_account_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{UserDevicesColumns[2], UserDevicesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		MessagesTable,
		NotificationsTable,
		NotificationPrefsTable,
		PsychologistsTable,
		UsersTable,
		UserDevicesTable,
	}
)

func init() {
}
