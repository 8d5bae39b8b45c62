package models

import (
	"fmt"
	"labtrack-service/internal/pkg/constvars"
)

type UserRole string

const (
	RolePatient   UserRole = constvars.RolePatient
	RoleAdmin     UserRole = constvars.RoleAdmin
	RoleCollector UserRole = constvars.RoleCollector
	RoleLabTech   UserRole = constvars.RoleLabTech
	RoleDoctor    UserRole = constvars.RoleDoctor
)

var AllRoles = []UserRole{RolePatient, RoleAdmin, RoleCollector, RoleLabTech, RoleDoctor}

func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	for _, known := range AllRoles {
		if role == known {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role: %s", s)
}

// transitionRoles maps each target status to the single role designated to
// drive the booking into it. BOOKED is absent: it is the creation status,
// reachable only through the patient's create operation.
var transitionRoles = map[BookingStatus]UserRole{
	StatusCollectorAssigned: RoleAdmin,
	StatusSampleCollected:   RoleCollector,
	StatusSampleReceived:    RoleLabTech,
	StatusTestingInProgress: RoleLabTech,
	StatusVerified:          RoleLabTech,
	StatusReportDelivered:   RoleDoctor,
}

// MayReach reports whether the role is the designated driver for the target
// status.
func (r UserRole) MayReach(target BookingStatus) bool {
	designated, ok := transitionRoles[target]
	return ok && designated == r
}

// DesignatedRole returns the role permitted to drive a booking into target.
func DesignatedRole(target BookingStatus) (UserRole, bool) {
	role, ok := transitionRoles[target]
	return role, ok
}
