package catalog

func (s *Scholarship) GetStringField(name string) string {
	switch name {
	case FieldID:
		return s.ID
	case FieldTitle:
		return s.Title
	case FieldDescription:
		return s.Description
	case FieldCategory:
		return s.Category
	case FieldRegion:
		return s.Region
	default:
		return ""
	}
}

func (s *Scholarship) GetNumberField(name string) (float64, bool) {
	if name == FieldAmount {
		return float64(s.Amount), true
	}
	return 0, false
}

func (i *Internship) GetStringField(name string) string {
	switch name {
	case FieldID:
		return i.ID
	case FieldTitle:
		return i.Title
	case FieldCompany:
		return i.Company
	case FieldDescription:
		return i.Description
	case FieldLocation:
		return i.Location
	default:
		return ""
	}
}

func (i *Internship) GetNumberField(name string) (float64, bool) {
	if name == FieldStipend {
		return float64(i.Stipend), true
	}
	return 0, false
}

func (c *College) GetStringField(name string) string {
	switch name {
	case FieldID:
		return c.ID
	case FieldName:
		return c.Name
	case FieldDescription:
		return c.Description
	case FieldLocation:
		return c.Location
	case FieldStream:
		return c.Stream
	default:
		return ""
	}
}

func (c *College) GetNumberField(name string) (float64, bool) {
	switch name {
	case FieldFees:
		return float64(c.Fees), true
	case FieldRank:
		return float64(c.Rank), true
	case FieldRating:
		return c.Rating, true
	default:
		return 0, false
	}
}

func (c *CoachingCenter) GetStringField(name string) string {
	switch name {
	case FieldID:
		return c.ID
	case FieldName:
		return c.Name
	case FieldDescription:
		return c.Description
	case FieldLocation:
		return c.Location
	case FieldExam:
		return c.Exam
	default:
		return ""
	}
}

func (c *CoachingCenter) GetNumberField(name string) (float64, bool) {
	switch name {
	case FieldFees:
		return float64(c.Fees), true
	case FieldRating:
		return c.Rating, true
	default:
		return 0, false
	}
}

func (p *Profile) GetStringField(name string) string {
	switch name {
	case FieldID:
		return p.ID
	case FieldUserID:
		return p.UserID
	case FieldName:
		return p.Name
	case FieldBio:
		return p.Bio
	case FieldLocation:
		return p.Location
	case FieldStream:
		return p.Stream
	default:
		return ""
	}
}

// Profiles carry no numeric fields.
func (p *Profile) GetNumberField(string) (float64, bool) {
	return 0, false
}
