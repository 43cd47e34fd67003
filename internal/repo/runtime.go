// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/tenangapp/tenang_backend/internal/repo/appointment"
	"github.com/tenangapp/tenang_backend/internal/repo/message"
	"github.com/tenangapp/tenang_backend/internal/repo/notification"
	"github.com/tenangapp/tenang_backend/internal/repo/notificationpref"
	"github.com/tenangapp/tenang_backend/internal/repo/psychologist"
	"github.com/tenangapp/tenang_backend/internal/repo/user"
	"github.com/tenangapp/tenang_backend/internal/repo/userdevice"
	"github.com/tenangapp/tenang_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescIsRead is the schema descriptor for is_read field.
	messageDescIsRead := messageFields[3].Descriptor()
	// message.DefaultIsRead holds the default value on creation for the is_read field.
	message.DefaultIsRead = messageDescIsRead.Default.(bool)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescIsPushed is the schema descriptor for is_pushed field.
	notificationDescIsPushed := notificationFields[6].Descriptor()
	// notification.DefaultIsPushed holds the default value on creation for the is_pushed field.
	notification.DefaultIsPushed = notificationDescIsPushed.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	notificationprefMixin := schema.NotificationPref{}.Mixin()
	notificationprefMixinFields0 := notificationprefMixin[0].Fields()
	_ = notificationprefMixinFields0
	notificationprefMixinFields1 := notificationprefMixin[1].Fields()
	_ = notificationprefMixinFields1
	notificationprefFields := schema.NotificationPref{}.Fields()
	_ = notificationprefFields
	// notificationprefDescCreatedAt is the schema descriptor for created_at field.
	notificationprefDescCreatedAt := notificationprefMixinFields1[0].Descriptor()
	// notificationpref.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpref.DefaultCreatedAt = notificationprefDescCreatedAt.Default.(func() time.Time)
	// notificationprefDescUpdatedAt is the schema descriptor for updated_at field.
	notificationprefDescUpdatedAt := notificationprefMixinFields1[1].Descriptor()
	// notificationpref.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpref.DefaultUpdatedAt = notificationprefDescUpdatedAt.Default.(func() time.Time)
	// notificationpref.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpref.UpdateDefaultUpdatedAt = notificationprefDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationprefDescMessagePush is the schema descriptor for message_push field.
	notificationprefDescMessagePush := notificationprefFields[1].Descriptor()
	// notificationpref.DefaultMessagePush holds the default value on creation for the message_push field.
	notificationpref.DefaultMessagePush = notificationprefDescMessagePush.Default.(bool)
	// notificationprefDescAppointmentPush is the schema descriptor for appointment_push field.
	notificationprefDescAppointmentPush := notificationprefFields[2].Descriptor()
	// notificationpref.DefaultAppointmentPush holds the default value on creation for the appointment_push field.
	notificationpref.DefaultAppointmentPush = notificationprefDescAppointmentPush.Default.(bool)
	// notificationprefDescAppointmentSms is the schema descriptor for appointment_sms field.
	notificationprefDescAppointmentSms := notificationprefFields[3].Descriptor()
	// notificationpref.DefaultAppointmentSms holds the default value on creation for the appointment_sms field.
	notificationpref.DefaultAppointmentSms = notificationprefDescAppointmentSms.Default.(bool)
	// notificationprefDescAppointmentEmail is the schema descriptor for appointment_email field.
	notificationprefDescAppointmentEmail := notificationprefFields[4].Descriptor()
	// notificationpref.DefaultAppointmentEmail holds the default value on creation for the appointment_email field.
	notificationpref.DefaultAppointmentEmail = notificationprefDescAppointmentEmail.Default.(bool)
	// notificationprefDescID is the schema descriptor for id field.
	notificationprefDescID := notificationprefMixinFields0[0].Descriptor()
	// notificationpref.DefaultID holds the default value on creation for the id field.
	notificationpref.DefaultID = notificationprefDescID.Default.(func() uuid.UUID)
	psychologistMixin := schema.Psychologist{}.Mixin()
	psychologistMixinFields0 := psychologistMixin[0].Fields()
	_ = psychologistMixinFields0
	psychologistMixinFields1 := psychologistMixin[1].Fields()
	_ = psychologistMixinFields1
	psychologistFields := schema.Psychologist{}.Fields()
	_ = psychologistFields
	// psychologistDescCreatedAt is the schema descriptor for created_at field.
	psychologistDescCreatedAt := psychologistMixinFields1[0].Descriptor()
	// psychologist.DefaultCreatedAt holds the default value on creation for the created_at field.
	psychologist.DefaultCreatedAt = psychologistDescCreatedAt.Default.(func() time.Time)
	// psychologistDescUpdatedAt is the schema descriptor for updated_at field.
	psychologistDescUpdatedAt := psychologistMixinFields1[1].Descriptor()
	// psychologist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	psychologist.DefaultUpdatedAt = psychologistDescUpdatedAt.Default.(func() time.Time)
	// psychologist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	psychologist.UpdateDefaultUpdatedAt = psychologistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// psychologistDescDisplayName is the schema descriptor for display_name field.
	psychologistDescDisplayName := psychologistFields[0].Descriptor()
	// psychologist.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	psychologist.DisplayNameValidator = psychologistDescDisplayName.Validators[0].(func(string) error)
	// psychologistDescTitle is the schema descriptor for title field.
	psychologistDescTitle := psychologistFields[1].Descriptor()
	// psychologist.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	psychologist.TitleValidator = psychologistDescTitle.Validators[0].(func(string) error)
	// psychologistDescEmail is the schema descriptor for email field.
	psychologistDescEmail := psychologistFields[2].Descriptor()
	// psychologist.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	psychologist.EmailValidator = psychologistDescEmail.Validators[0].(func(string) error)
	// psychologistDescPhone is the schema descriptor for phone field.
	psychologistDescPhone := psychologistFields[3].Descriptor()
	// psychologist.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	psychologist.PhoneValidator = psychologistDescPhone.Validators[0].(func(string) error)
	// psychologistDescIsActive is the schema descriptor for is_active field.
	psychologistDescIsActive := psychologistFields[4].Descriptor()
	// psychologist.DefaultIsActive holds the default value on creation for the is_active field.
	psychologist.DefaultIsActive = psychologistDescIsActive.Default.(bool)
	// psychologistDescID is the schema descriptor for id field.
	psychologistDescID := psychologistMixinFields0[0].Descriptor()
	// psychologist.DefaultID holds the default value on creation for the id field.
	psychologist.DefaultID = psychologistDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[0].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescLocale is the schema descriptor for locale field.
	userDescLocale := userFields[3].Descriptor()
	// user.DefaultLocale holds the default value on creation for the locale field.
	user.DefaultLocale = userDescLocale.Default.(string)
	// user.LocaleValidator is a validator for the "locale" field. It is called by the builders before save.
	user.LocaleValidator = userDescLocale.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	userdeviceMixin := schema.UserDevice{}.Mixin()
	userdeviceMixinFields0 := userdeviceMixin[0].Fields()
	_ = userdeviceMixinFields0
	userdeviceMixinFields1 := userdeviceMixin[1].Fields()
	_ = userdeviceMixinFields1
	userdeviceFields := schema.UserDevice{}.Fields()
	_ = userdeviceFields
	// userdeviceDescCreatedAt is the schema descriptor for created_at field.
	userdeviceDescCreatedAt := userdeviceMixinFields1[0].Descriptor()
	// userdevice.DefaultCreatedAt holds the default value on creation for the created_at field.
	userdevice.DefaultCreatedAt = userdeviceDescCreatedAt.Default.(func() time.Time)
	// userdeviceDescDeviceToken is the schema descriptor for device_token field.
	userdeviceDescDeviceToken := userdeviceFields[2].Descriptor()
	// userdevice.DeviceTokenValidator is a validator for the "device_token" field. It is called by the builders before save.
	userdevice.DeviceTokenValidator = userdeviceDescDeviceToken.Validators[0].(func(string) error)
	// userdeviceDescIsActive is the schema descriptor for is_active field.
	userdeviceDescIsActive := userdeviceFields[4].Descriptor()
	// userdevice.DefaultIsActive holds the default value on creation for the is_active field.
	userdevice.DefaultIsActive = userdeviceDescIsActive.Default.(bool)
	// userdeviceDescID is the schema descriptor for id field.
	userdeviceDescID := userdeviceMixinFields0[0].Descriptor()
	// userdevice.DefaultID holds the default value on creation for the id field.
	userdevice.DefaultID = userdeviceDescID.Default.(func() uuid.UUID)
}
