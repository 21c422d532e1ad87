package get_properties

import "github.com/lexagoldenpost/reavito-sub000/internal/service/properties/models"

// PropertiesResponse HTTP response model
type PropertiesResponse struct {
	Properties []models.PropertyInfo `json:"properties"`
}
