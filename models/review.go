package models

// Review source tags set by the repository on load.
const (
	ReviewSourceClinic = "clinic" // clinic-scoped collection
	ReviewSourceGlobal = "global" // flat top-level collection
)

// Review is an approved review. Every approved review exists under the same
// id in two locations: the clinic-scoped collection and the flat collection.
// CreatedAt/ApprovedAt are left untyped because historical documents carry
// mixed encodings (epoch numbers, ISO-8601 strings, {seconds} maps); the
// aggregator normalizes them for ordering.
type Review struct {
	ID         string `bson:"id" json:"id"`
	ClinicID   string `bson:"clinicId" json:"clinicId"`
	Author     string `bson:"author" json:"author"`
	Rating     int    `bson:"rating" json:"rating"`
	Title      string `bson:"title" json:"title"`
	Text       string `bson:"text" json:"text"`
	CreatedAt  any    `bson:"createdAt" json:"createdAt,omitempty"`
	ApprovedAt any    `bson:"approvedAt" json:"approvedAt,omitempty"`
	Source     string `bson:"-" json:"source,omitempty"`
}
