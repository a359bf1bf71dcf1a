package reading

// Patches list the fields an update may change. Absent fields keep their
// stored value. ID and the counters are accepted so a full record can be sent
// back, but they are never applied.

type NoticePatch struct {
	ID          *int      `json:"id"`
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Date        *string   `json:"date"`
	Views       *int      `json:"views"`
	Author      *string   `json:"author"`
	Attachments *[]string `json:"attachments"`
	Important   *bool     `json:"important"`
}

func (p NoticePatch) Apply(n *Notice) {
	set(&n.Title, p.Title)
	set(&n.Content, p.Content)
	set(&n.Date, p.Date)
	set(&n.Author, p.Author)
	set(&n.Important, p.Important)
	if p.Attachments != nil {
		n.Attachments = nonNil(*p.Attachments)
	}
}

type ReviewPatch struct {
	ID        *int          `json:"id"`
	Type      *ReviewType   `json:"type"`
	User      *Reviewer     `json:"user"`
	Book      *ReviewedBook `json:"book"`
	Rating    *int          `json:"rating"`
	Text      *string       `json:"text"`
	Likes     *int          `json:"likes"`
	Comments  *int          `json:"comments"`
	TimeAgo   *string       `json:"timeAgo"`
	Category  *string       `json:"category"`
	Program   *string       `json:"program"`
	ProgramID *int          `json:"programId"`
}

func (p ReviewPatch) Apply(r *Review) {
	set(&r.Type, p.Type)
	set(&r.User, p.User)
	set(&r.Book, p.Book)
	set(&r.Rating, p.Rating)
	set(&r.Text, p.Text)
	set(&r.TimeAgo, p.TimeAgo)
	set(&r.Category, p.Category)
	set(&r.Program, p.Program)
	if p.ProgramID != nil {
		id := *p.ProgramID
		r.ProgramID = &id
	}
}

type ClassicPatch struct {
	ID          *int    `json:"id"`
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Publisher   *string `json:"publisher"`
	Year        *int    `json:"year"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Cover       *string `json:"cover"`
	ISBN        *string `json:"isbn"`
}

func (p ClassicPatch) Apply(c *Classic) {
	set(&c.Title, p.Title)
	set(&c.Author, p.Author)
	set(&c.Publisher, p.Publisher)
	set(&c.Year, p.Year)
	set(&c.Category, p.Category)
	set(&c.Description, p.Description)
	set(&c.Cover, p.Cover)
	set(&c.ISBN, p.ISBN)
}

type ProgramPatch struct {
	ID           *int    `json:"id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Host         *string `json:"host"`
	Location     *string `json:"location"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Capacity     *int    `json:"capacity"`
	Participants *int    `json:"participants"`
	Status       *string `json:"status"`
	Cover        *string `json:"cover"`
}

func (p ProgramPatch) Apply(pr *Program) {
	set(&pr.Title, p.Title)
	set(&pr.Description, p.Description)
	set(&pr.Category, p.Category)
	set(&pr.Host, p.Host)
	set(&pr.Location, p.Location)
	set(&pr.StartDate, p.StartDate)
	set(&pr.EndDate, p.EndDate)
	set(&pr.Capacity, p.Capacity)
	set(&pr.Status, p.Status)
	set(&pr.Cover, p.Cover)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// nonNil copies list and never returns nil, so attachments encode as [].
func nonNil(list []string) []string {
	return append(make([]string, 0, len(list)), list...)
}
