package response

import (
	"github.com/waysterMelo/sarah-pilates-sub001/internal/data/entity"
)

type SlotResponse struct {
	ID               int64  `json:"id"`
	Time             string `json:"time"`
	MaxCapacity      int    `json:"max_capacity"`
	CurrentBookings  int    `json:"current_bookings"`
	OccupancyPercent int    `json:"occupancy_percent"`
	OccupancyBand    string `json:"occupancy_band"`
	Room             string `json:"room"`
	Instructor       string `json:"instructor"`
	ClassType        string `json:"class_type"`
}

type DayResponse struct {
	Day   string         `json:"day"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type WeekResponse struct {
	Days []DayResponse `json:"days"`
}

type ScheduleStatsResponse struct {
	TotalCapacity    int `json:"total_capacity"`
	TotalBookings    int `json:"total_bookings"`
	AverageOccupancy int `json:"average_occupancy"`
}

func SlotToResponse(slot entity.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:               slot.ID,
		Time:             slot.Time,
		MaxCapacity:      slot.MaxCapacity,
		CurrentBookings:  slot.CurrentBookings,
		OccupancyPercent: slot.OccupancyPercent(),
		OccupancyBand:    string(slot.Band()),
		Room:             slot.Room,
		Instructor:       slot.Instructor,
		ClassType:        slot.ClassType,
	}
}

func WeekToResponse(week entity.WeekSchedule) *WeekResponse {
	resp := &WeekResponse{Days: make([]DayResponse, 0, len(week.Days))}
	for _, day := range week.Days {
		dayResp := DayResponse{Day: day.Day, Date: day.Date, Slots: make([]SlotResponse, 0, len(day.Slots))}
		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, SlotToResponse(slot))
		}
		resp.Days = append(resp.Days, dayResp)
	}
	return resp
}
