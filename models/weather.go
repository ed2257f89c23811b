package models

import "time"

// WeatherSystemActor is recorded as UpdatedBy until an admin first changes the weather
const WeatherSystemActor = "system"

// WeatherStatus is a process-wide singleton, stored as row WeatherStatusRowID
type WeatherStatus struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	IsBad     bool      `json:"is_bad"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	UpdatedBy string    `json:"updated_by"`
}

const WeatherStatusRowID = 1
