package domain

// Operation es un enumerado con cada operación remota del servicio Step7.
type Operation int

const (
	OpUnknown Operation = iota
	OpListProjects
	OpListPrograms
	OpListContainers
	OpListStations
	OpListModules
	OpCreateProject
	OpCreateLibrary
	OpRegisterProject
	OpRemoveProject
	OpImportSourcesDir
	OpImportLibSources
	OpImportLibBlocks
	OpImportSymbols
	OpCompileSources
)

// Kind distingue las operaciones que devuelven un StatusEnvelope de las que
// devuelven un ListEnvelope.
type Kind int

const (
	KindAction Kind = iota
	KindEnumeration
)

func (k Kind) String() string {
	if k == KindEnumeration {
		return "enumeration"
	}
	return "action"
}

type operationInfo struct {
	method string
	verb   string
	kind   Kind
}

var operations = map[Operation]operationInfo{
	OpListProjects:     {"ListProjects", "listProjects", KindEnumeration},
	OpListPrograms:     {"ListPrograms", "listPrograms", KindEnumeration},
	OpListContainers:   {"ListContainers", "listContainers", KindEnumeration},
	OpListStations:     {"ListStations", "listStations", KindEnumeration},
	OpListModules:      {"ListModules", "listModules", KindEnumeration},
	OpCreateProject:    {"CreateProject", "createProject", KindAction},
	OpCreateLibrary:    {"CreateLibrary", "createLibrary", KindAction},
	OpRegisterProject:  {"RegisterProject", "registerProject", KindAction},
	OpRemoveProject:    {"RemoveProject", "removeProject", KindAction},
	OpImportSourcesDir: {"ImportSourcesDir", "importSourcesDir", KindAction},
	OpImportLibSources: {"ImportLibSources", "importLibSources", KindAction},
	OpImportLibBlocks:  {"ImportLibBlocks", "importLibBlocks", KindAction},
	OpImportSymbols:    {"ImportSymbols", "importSymbols", KindAction},
	OpCompileSources:   {"CompileSources", "compileSources", KindAction},
}

// AllOperations devuelve las operaciones conocidas en orden de declaración.
func AllOperations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := OpListProjects; op <= OpCompileSources; op++ {
		ops = append(ops, op)
	}
	return ops
}

// String devuelve el nombre del método remoto, p.ej. "ListPrograms".
func (o Operation) String() string {
	if info, ok := operations[o]; ok {
		return info.method
	}
	return "Unknown"
}

// Verb es el verbo de línea de comandos equivalente, p.ej. "listPrograms".
func (o Operation) Verb() string {
	return operations[o].verb
}

func (o Operation) Kind() Kind {
	return operations[o].kind
}

func (o Operation) Valid() bool {
	_, ok := operations[o]
	return ok
}

// ParseOperation resuelve un nombre de método o verbo a su Operation.
func ParseOperation(name string) (Operation, bool) {
	for op, info := range operations {
		if info.method == name || info.verb == name {
			return op, true
		}
	}
	return OpUnknown, false
}
