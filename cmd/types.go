package cmd

import (
	"strconv"

	"github.com/slperm/cli/internal/softlayer"
)

// roleList renders roles as a table
type roleList []softlayer.Role

func (l roleList) Headers() []string { return []string{"ID", "NAME", "DESCRIPTION"} }

func (l roleList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{strconv.Itoa(r.ID), r.Name, orDash(r.Description)})
	}
	return rows
}

// groupList renders groups as a table
type groupList []softlayer.Group

func (l groupList) Headers() []string { return []string{"ID", "NAME", "DESCRIPTION"} }

func (l groupList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, g := range l {
		rows = append(rows, []string{strconv.Itoa(g.ID), g.Name, orDash(g.Description)})
	}
	return rows
}

// actionList renders permission actions as a table
type actionList []softlayer.PermissionAction

func (l actionList) Headers() []string { return []string{"ID", "KEY NAME", "NAME"} }

func (l actionList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, a := range l {
		rows = append(rows, []string{strconv.Itoa(a.ID), a.KeyName, orDash(a.Name)})
	}
	return rows
}

// userList renders account users as a table
type userList []softlayer.User

func (l userList) Headers() []string { return []string{"ID", "USERNAME", "FIRST NAME", "LAST NAME"} }

func (l userList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, u := range l {
		rows = append(rows, []string{strconv.Itoa(u.ID), orDash(u.Username), u.FirstName, u.LastName})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
