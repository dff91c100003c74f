package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceStatus marks a player's presence at a coaching session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceRecord links a player to one coaching session of a programme.
type AttendanceRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ProgrammeID primitive.ObjectID `json:"programmeId" bson:"programmeId" example:"507f1f77bcf86cd799439012"`
	PlayerID    primitive.ObjectID `json:"playerId" bson:"playerId" example:"507f1f77bcf86cd799439013"`
	SessionDate time.Time          `json:"sessionDate" bson:"sessionDate" example:"2026-04-02T17:00:00Z"`
	Status      AttendanceStatus   `json:"status" bson:"status" example:"present"`
	RecordedBy  primitive.ObjectID `json:"recordedBy" bson:"recordedBy" example:"507f1f77bcf86cd799439014"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2026-04-02T18:30:00Z"`
}

// RecordAttendanceRequest is the payload for recording attendance.
type RecordAttendanceRequest struct {
	PlayerID    string           `json:"playerId" binding:"required" example:"507f1f77bcf86cd799439013"`
	SessionDate time.Time        `json:"sessionDate" binding:"required" example:"2026-04-02T17:00:00Z"`
	Status      AttendanceStatus `json:"status" binding:"required,oneof=present absent late" example:"present"`
}

// AttendanceSummary aggregates attendance for one player across a programme.
type AttendanceSummary struct {
	PlayerID primitive.ObjectID `json:"playerId" bson:"_id" example:"507f1f77bcf86cd799439013"`
	Sessions int                `json:"sessions" bson:"sessions" example:"12"`
	Present  int                `json:"present" bson:"present" example:"10"`
	Absent   int                `json:"absent" bson:"absent" example:"1"`
	Late     int                `json:"late" bson:"late" example:"1"`
}

// AttendanceListResponse is the response for listing attendance records.
type AttendanceListResponse struct {
	Items []AttendanceRecord `json:"items"`
}

// AttendanceSummaryResponse is the response for a programme attendance report.
type AttendanceSummaryResponse struct {
	ProgrammeID primitive.ObjectID  `json:"programmeId" example:"507f1f77bcf86cd799439012"`
	Players     []AttendanceSummary `json:"players"`
}
