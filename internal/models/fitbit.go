package models

import "time"

type FitbitConnect struct {
	AuthorizationURL string `json:"url"`
}

type FitbitStatus struct {
	Connected  bool       `json:"connected"`
	LastSyncAt *time.Time `json:"lastSync,omitempty"`
}

// FitbitData - дневная сводка активности
type FitbitData struct {
	Date             string `json:"date"`
	Steps            int    `json:"steps"`
	RestingHeartRate int    `json:"restingHeartRate"`
	CaloriesOut      int    `json:"caloriesOut"`
	SleepMinutes     int    `json:"sleepMinutes"`
}
