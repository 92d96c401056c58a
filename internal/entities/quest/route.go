package quest

import "strings"

// Route is the visa route a session is currently on
type Route string

// Routes
const (
	RouteOffshore       Route = "OVS"
	RouteStudent        Route = "STU"
	RouteWorkingHoliday Route = "WHV"
	RouteGraduate       Route = "GRA"
)

// Bucket returns the event bucket holding this route's specific events
func (r Route) Bucket() BucketID {
	switch r {
	case RouteStudent:
		return BucketStudent
	case RouteWorkingHoliday:
		return BucketWorkingHoliday
	case RouteGraduate:
		return BucketGraduate
	default:
		return BucketOffshore
	}
}

// Name returns the display name of the route
func (r Route) Name() string {
	switch r {
	case RouteOffshore:
		return "Offshore Planning"
	case RouteStudent:
		return "Student Visa"
	case RouteWorkingHoliday:
		return "Working Holiday"
	case RouteGraduate:
		return "Graduate Visa"
	default:
		return string(r)
	}
}

// CourseType is the study program of a student
type CourseType string

// Course types. The zero value means no course was chosen.
const (
	CourseTypeUnset  CourseType = ""
	CourseTypeELICOS CourseType = "ELICOS"
	CourseTypeVET    CourseType = "VET"
	CourseTypeHE     CourseType = "HE"
)

// ParseCourseType accepts elicos, vet or he in any case
func ParseCourseType(s string) (CourseType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CourseTypeELICOS):
		return CourseTypeELICOS, true
	case string(CourseTypeVET):
		return CourseTypeVET, true
	case string(CourseTypeHE):
		return CourseTypeHE, true
	default:
		return CourseTypeUnset, false
	}
}

// Destination is a choice offered between routes
type Destination string

// Destinations
const (
	DestinationStudent        Destination = "student"
	DestinationStudentVET     Destination = "student_vet"
	DestinationStudentHE      Destination = "student_he"
	DestinationWorkingHoliday Destination = "working_holiday"
	DestinationGraduate       Destination = "graduate"
	DestinationEnd            Destination = "end"
)

// Label returns the button text for the destination
func (d Destination) Label() string {
	switch d {
	case DestinationStudent:
		return "Apply for a Student Visa"
	case DestinationStudentVET:
		return "Continue to VET study"
	case DestinationStudentHE:
		return "Continue to Higher Education"
	case DestinationWorkingHoliday:
		return "Go on a Working Holiday"
	case DestinationGraduate:
		return "Apply for a Graduate Visa"
	case DestinationEnd:
		return "End the journey"
	default:
		return string(d)
	}
}
