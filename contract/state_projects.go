package contract

// -----------------------------------------------------------------------------
// Project State Persistence
// -----------------------------------------------------------------------------

// nextProjectID bumps the persisted sequence and returns the fresh id.
// The first project ever stored gets id 1.
func nextProjectID() uint64 {
	id := getCount(ProjectSeqKey) + 1
	setCount(ProjectSeqKey, id)
	return id
}

// saveProject writes the full project blob under its byte-prefixed key and
// makes sure the id sits in the iteration index.
func saveProject(prj *Project) error {
	data, err := ToJSON(prj, "project")
	if err != nil {
		return err
	}
	getState().Set(projectKey(prj.ID), data)
	addIDToIndex(projectIndexKey, prj.ID)
	return nil
}

// loadProject fetches one project or reports it unregistered.
func loadProject(id uint64) (*Project, error) {
	ptr := getState().Get(projectKey(id))
	if ptr == nil || *ptr == "" {
		return nil, ErrProjectNotFound.Wrapf("id %d", id)
	}
	return FromJSON[Project](*ptr, "project")
}

// deleteProject hard-deletes the blob and the index entry.
func deleteProject(id uint64) {
	getState().Delete(projectKey(id))
	removeIDFromIndex(projectIndexKey, id)
}

// listAllProjects loads every stored project in index order. This is the
// snapshot the shared-pool estimate iterates, so it must cover every id.
func listAllProjects() ([]*Project, error) {
	ids := getIDsFromIndex(projectIndexKey)
	out := make([]*Project, 0, len(ids))
	for _, id := range ids {
		prj, err := loadProject(id)
		if err != nil {
			return nil, err
		}
		out = append(out, prj)
	}
	return out, nil
}
