// Package seed provides the demo complaint data set used when the service
// runs without a real submission feed: ten named complaints and two anonymous
// ones, spread across the four lifecycle states.
package seed

import (
	"time"

	"ccms-backend/internal/store"
)

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

// Complaints returns a fresh copy of the demo data set.
func Complaints() []store.Complaint {
	return []store.Complaint{
		{
			ID:          1,
			Subject:     "Broken Ceiling Fan in Room 101",
			Category:    "Fan",
			Location:    "Room 101, Main Building, Floor 2",
			Status:      store.StatusPending,
			Priority:    store.PriorityHigh,
			SubmittedBy: "Rahul Sharma",
			Email:       "rahul@college.edu",
			SubmittedAt: ts(2025, time.January, 15, 9, 30),
			UpdatedAt:   ts(2025, time.January, 15, 9, 30),
			Description: "The ceiling fan is not working properly and makes strange noises when turned on. It needs immediate repair as the room gets very hot.",
			Images: []string{
				"https://media.istockphoto.com/id/1367991732/photo/old-style-electric-ceiling-fan-inside-the-building.jpg",
				"https://media.istockphoto.com/id/1827663223/photo/old-electric-ceiling-fan.jpg",
			},
			VerificationDocument: &store.VerificationDocument{
				Filename:   "application_rahul_sharma.pdf",
				Size:       2458624,
				UploadedAt: ts(2025, time.January, 15, 9, 28),
				URL:        "#",
			},
		},
		{
			ID:           2,
			Subject:      "Dirty Washroom in Block A",
			Category:     "Cleanliness",
			Location:     "Block A, Floor 1, Boys Washroom",
			Status:       store.StatusInProgress,
			Priority:     store.PriorityMedium,
			SubmittedBy:  "Priya Patel",
			Email:        "priya@college.edu",
			SubmittedAt:  ts(2025, time.January, 14, 11, 20),
			UpdatedAt:    ts(2025, time.January, 14, 14, 30),
			Description:  "The washroom has not been cleaned for days. There's water leakage and the floor is slippery.",
			AdminRemarks: "Cleaning staff assigned",
			AssignedTo:   "Maintenance Team",
			Images: []string{
				"https://media.istockphoto.com/id/1080548080/photo/dirty-toilet-in-public-building.jpg",
			},
		},
		{
			ID:           3,
			Subject:      "Projector Not Working in Lab 203",
			Category:     "Projector",
			Location:     "Lab 203, IT Block, Floor 2",
			Status:       store.StatusResolved,
			Priority:     store.PriorityHigh,
			SubmittedBy:  "Amit Kumar",
			Email:        "amit@college.edu",
			SubmittedAt:  ts(2025, time.January, 13, 8, 15),
			UpdatedAt:    ts(2025, time.January, 13, 16, 0),
			Description:  "The projector is not displaying anything. Classes are getting disrupted.",
			AdminRemarks: "Replaced projector bulb. Working fine now.",
			AssignedTo:   "IT Department",
			VerificationDocument: &store.VerificationDocument{
				Filename:   "lab_complaint_application.pdf",
				Size:       1856432,
				UploadedAt: ts(2025, time.January, 13, 8, 10),
				URL:        "#",
			},
		},
		{
			ID:          4,
			Subject:     "Flickering Lights in Library",
			Category:    "Light",
			Location:    "Central Library, Reading Hall",
			Status:      store.StatusPending,
			Priority:    store.PriorityLow,
			SubmittedBy: "Sneha Reddy",
			Email:       "sneha@college.edu",
			SubmittedAt: ts(2025, time.January, 12, 14, 45),
			UpdatedAt:   ts(2025, time.January, 12, 14, 45),
			Description: "The tube lights in the reading hall keep flickering. It's disturbing during study hours.",
		},
		{
			ID:           5,
			Subject:      "Broken Bench in Cafeteria",
			Category:     "Infrastructure",
			Location:     "Cafeteria, Ground Floor",
			Status:       store.StatusRejected,
			Priority:     store.PriorityLow,
			SubmittedBy:  "Vikram Singh",
			Email:        "vikram@college.edu",
			SubmittedAt:  ts(2025, time.January, 11, 12, 30),
			UpdatedAt:    ts(2025, time.January, 11, 15, 0),
			Description:  "One of the benches is broken and unsafe to sit on.",
			AdminRemarks: "Duplicate complaint. Already resolved in complaint #47",
		},
		{
			ID:           6,
			Subject:      "Water Leakage in Boys Hostel",
			Category:     "Plumbing",
			Location:     "Boys Hostel, Block B, Room 305",
			Status:       store.StatusInProgress,
			Priority:     store.PriorityHigh,
			SubmittedBy:  "Arjun Mehta",
			Email:        "arjun@college.edu",
			SubmittedAt:  ts(2025, time.January, 10, 7, 0),
			UpdatedAt:    ts(2025, time.January, 10, 10, 30),
			Description:  "There's continuous water leakage from the bathroom ceiling. The room is getting flooded.",
			AdminRemarks: "Plumber assigned. Work in progress.",
			AssignedTo:   "Plumbing Team",
			VerificationDocument: &store.VerificationDocument{
				Filename:   "hostel_complaint_arjun.pdf",
				Size:       3245120,
				UploadedAt: ts(2025, time.January, 10, 6, 55),
				URL:        "#",
			},
		},
		{
			ID:          7,
			Subject:     "Slow WiFi in Computer Lab",
			Category:    "Network",
			Location:    "Computer Lab 1, IT Block",
			Status:      store.StatusPending,
			Priority:    store.PriorityMedium,
			SubmittedBy: "Neha Gupta",
			Email:       "neha@college.edu",
			SubmittedAt: ts(2025, time.January, 9, 16, 20),
			UpdatedAt:   ts(2025, time.January, 9, 16, 20),
			Description: "The internet connection is very slow and keeps disconnecting. Students cannot complete their assignments.",
		},
		{
			ID:           8,
			Subject:      "Broken Door Lock in Classroom 405",
			Category:     "Infrastructure",
			Location:     "Classroom 405, Main Building, Floor 4",
			Status:       store.StatusResolved,
			Priority:     store.PriorityMedium,
			SubmittedBy:  "Rohan Das",
			Email:        "rohan@college.edu",
			SubmittedAt:  ts(2025, time.January, 8, 10, 0),
			UpdatedAt:    ts(2025, time.January, 8, 18, 0),
			Description:  "The door lock is broken and the classroom cannot be secured properly.",
			AdminRemarks: "Lock replaced. Issue resolved.",
			AssignedTo:   "Maintenance Team",
		},
		{
			ID:          9,
			Subject:     "AC Not Working in Auditorium",
			Category:    "Fan",
			Location:    "Main Auditorium",
			Status:      store.StatusPending,
			Priority:    store.PriorityHigh,
			SubmittedBy: "Anjali Desai",
			Email:       "anjali@college.edu",
			SubmittedAt: ts(2025, time.January, 22, 14, 0),
			UpdatedAt:   ts(2025, time.January, 22, 14, 0),
			Description: "The air conditioning system in the auditorium has stopped working.",
		},
		{
			ID:           10,
			Subject:      "Broken Whiteboard in Room 205",
			Category:     "Infrastructure",
			Location:     "Room 205, Science Block",
			Status:       store.StatusInProgress,
			Priority:     store.PriorityLow,
			SubmittedBy:  "Karan Malhotra",
			Email:        "karan@college.edu",
			SubmittedAt:  ts(2025, time.January, 21, 11, 15),
			UpdatedAt:    ts(2025, time.January, 21, 15, 0),
			Description:  "The whiteboard markers don't erase properly and the board is damaged.",
			AdminRemarks: "New board ordered",
			AssignedTo:   "Maintenance",
		},
		{
			ID:           11,
			Subject:      "Inappropriate Behavior by Staff Member",
			Category:     "Other",
			Location:     "2nd Floor, Central Library",
			Status:       store.StatusInProgress,
			Priority:     store.PriorityHigh,
			SubmittedBy:  "Anonymous Student",
			IsAnonymous:  true,
			SubmittedAt:  ts(2025, time.January, 20, 10, 15),
			UpdatedAt:    ts(2025, time.January, 20, 16, 30),
			Description:  "I want to report inappropriate behavior and harassment by a cleaning staff member on the 2nd floor of the library. This person has been making uncomfortable comments to female students. Please investigate this matter urgently as it's affecting our ability to study safely.",
			AdminRemarks: "Investigation started. CCTV footage being reviewed. Security has been notified.",
			AssignedTo:   "Security Head",
			VerificationDocument: &store.VerificationDocument{
				Filename:   "student_id_verification.pdf",
				Size:       1245632,
				UploadedAt: ts(2025, time.January, 20, 10, 12),
				URL:        "#",
			},
		},
		{
			ID:          12,
			Subject:     "Ragging Incident in Boys Hostel",
			Category:    "Other",
			Location:    "Boys Hostel, Block C, Floor 3",
			Status:      store.StatusPending,
			Priority:    store.PriorityHigh,
			SubmittedBy: "Anonymous Student",
			IsAnonymous: true,
			SubmittedAt: ts(2025, time.January, 23, 22, 45),
			UpdatedAt:   ts(2025, time.January, 23, 22, 45),
			Description: "There have been multiple incidents of ragging by senior students in Block C. They are forcing first-year students to do inappropriate tasks late at night. This needs immediate attention as it's creating a hostile environment. I'm submitting this anonymously for safety reasons.",
		},
	}
}
