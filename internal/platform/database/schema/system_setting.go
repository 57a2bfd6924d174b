package schema

// SystemSettingTable represents the 'system.setting' table
type SystemSettingTable struct {
	Table       string
	ID          string
	Key         string
	Value       string
	Description string
	UpdatedBy   string
	UpdatedAt   string
}

// SystemSetting is the schema definition for system.setting
var SystemSetting = SystemSettingTable{
	Table:       "system.setting",
	ID:          "id",
	Key:         "key",
	Value:       "value",
	Description: "description",
	UpdatedBy:   "updatedby",
	UpdatedAt:   "updatedat",
}
