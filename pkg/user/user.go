package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Observed college years. CollegeYear is a plain string, these are not enforced.
const (
	Freshman  = "Freshman"
	Sophomore = "Sophomore"
	Junior    = "Junior"
	Senior    = "Senior"
)

// PUIDKey is the document field holding the natural key of a user
const PUIDKey = "puid"

// User is a student record as stored in the users collection
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"firstName"`
	LastName    string             `bson:"lastName"`
	PUID        string             `bson:"puid"`
	DormName    string             `bson:"dormName"`
	DOB         time.Time          `bson:"dob"`
	CollegeYear string             `bson:"collegeYear"`
}

// SameFields reports whether u and o carry the same field values, the database id aside
func (u User) SameFields(o User) bool {
	return u.FirstName == o.FirstName &&
		u.LastName == o.LastName &&
		u.PUID == o.PUID &&
		u.DormName == o.DormName &&
		u.DOB.Equal(o.DOB) &&
		u.CollegeYear == o.CollegeYear
}

// PUIDs returns the puid of every user, in order
func PUIDs(us []User) []string {
	ps := make([]string, 0, len(us))
	for _, u := range us {
		ps = append(ps, u.PUID)
	}

	return ps
}

// Documents converts users to the []interface{} form expected by the driver
func Documents(us []User) []interface{} {
	docs := make([]interface{}, 0, len(us))
	for _, u := range us {
		docs = append(docs, u)
	}

	return docs
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Fixtures returns the batch of users loaded by the seeder.
// A new slice is built on each call.
func Fixtures() []User {
	return []User{
		{FirstName: "Liam", LastName: "Nguyen", PUID: "00361-54538", DormName: "Shreve", DOB: date(2002, time.June, 2), CollegeYear: Junior},
		{FirstName: "Ava", LastName: "Patel", PUID: "00361-54539", DormName: "Hillenbrand", DOB: date(2001, time.September, 14), CollegeYear: Senior},
		{FirstName: "Noah", LastName: "Kim", PUID: "00361-54540", DormName: "McCutcheon", DOB: date(2003, time.April, 10), CollegeYear: Sophomore},
		{FirstName: "Isabella", LastName: "Lopez", PUID: "00361-54541", DormName: "Wiley", DOB: date(2004, time.December, 5), CollegeYear: Freshman},
		{FirstName: "Mason", LastName: "Singh", PUID: "00361-54542", DormName: "Earhart Hall", DOB: date(2002, time.July, 17), CollegeYear: Junior},
		{FirstName: "Sophia", LastName: "Zhang", PUID: "00361-54543", DormName: "Windsor", DOB: date(2001, time.October, 9), CollegeYear: Senior},
		{FirstName: "Ethan", LastName: "Ali", PUID: "00361-54544", DormName: "Shreve", DOB: date(2003, time.March, 20), CollegeYear: Sophomore},
		{FirstName: "Mia", LastName: "Gonzalez", PUID: "00361-54545", DormName: "McCutcheon", DOB: date(2005, time.June, 22), CollegeYear: Freshman},
		{FirstName: "Aiden", LastName: "Brown", PUID: "00361-54546", DormName: "Earhart Hall", DOB: date(2002, time.February, 14), CollegeYear: Junior},
		{FirstName: "Charlotte", LastName: "Khan", PUID: "00361-54547", DormName: "Hillenbrand", DOB: date(2001, time.May, 30), CollegeYear: Senior},
		{FirstName: "Logan", LastName: "White", PUID: "00361-54548", DormName: "Wiley", DOB: date(2004, time.August, 19), CollegeYear: Sophomore},
		{FirstName: "Amelia", LastName: "Singh", PUID: "00361-54549", DormName: "Windsor", DOB: date(2002, time.January, 2), CollegeYear: Junior},
		{FirstName: "James", LastName: "Wright", PUID: "00361-54550", DormName: "Shreve", DOB: date(2001, time.November, 11), CollegeYear: Senior},
	}
}
