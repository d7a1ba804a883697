package softlayer

// Role is a SoftLayer_User_Permission_Role.
type Role struct {
	ID          int    `json:"id,omitempty" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	KeyName     string `json:"keyName,omitempty" yaml:"keyName,omitempty"`
	CreateDate  string `json:"createDate,omitempty" yaml:"createDate,omitempty"`
}

// Group is a SoftLayer_User_Permission_Group.
type Group struct {
	ID          int    `json:"id,omitempty" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CreateDate  string `json:"createDate,omitempty" yaml:"createDate,omitempty"`
}

// PermissionAction is a SoftLayer_User_Permission_Action.
type PermissionAction struct {
	ID          int    `json:"id,omitempty" yaml:"id"`
	KeyName     string `json:"keyName,omitempty" yaml:"keyName"`
	Name        string `json:"name,omitempty" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// User is a SoftLayer_User_Customer as returned by the account user listing.
type User struct {
	ID        int    `json:"id" yaml:"id"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
}

// ResourceObject scopes a permission group to one resource. ComplexType is
// the SoftLayer type name of the resource, e.g. SoftLayer_Hardware_Server.
// The id is passed through as given; the API coerces it.
type ResourceObject struct {
	ComplexType string `json:"complexType" yaml:"complexType"`
	ID          string `json:"id" yaml:"id"`
}

// objectRef is the minimal template the API accepts to reference an object.
type objectRef struct {
	ID int `json:"id"`
}
