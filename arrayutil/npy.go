package arrayutil

import (
	"errors"
	"log"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

var errEmptyDump = errors.New("arrayutil: refusing to dump an empty event array")

//HandleError aborts on the first unrecoverable error.
func HandleError(err error) {
	if err != nil {
		log.Panic(err)
	}
}

//ReadNpy reads the content of an npy file into a dense matrix.
func ReadNpy(fileName string) (denseMat *mat.Dense) {
	f, err := os.Open(fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { HandleError(f.Close()) }()

	r, err := npyio.NewReader(f)
	if err != nil {
		log.Fatal(err)
	}

	denseMat = &mat.Dense{}
	HandleError(r.Read(denseMat))
	return
}

//WriteNpy dumps a dense matrix into an npy file.
func WriteNpy(fileName string, m *mat.Dense) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() { HandleError(f.Close()) }()
	return npyio.Write(f, m)
}

//ReadEventArray loads an event table dumped on the ntuple side.
func ReadEventArray(fileName string) EventArray {
	log.Print("\ttry to load events <", fileName, ">")
	return NewEventArray(ReadNpy(fileName))
}

//WriteEventArray dumps an event table back into an npy file. Empty arrays
//have no matrix to dump, which npyio rejects, so they are reported to the
//caller instead.
func WriteEventArray(fileName string, a EventArray) error {
	if a.Len() == 0 {
		return errEmptyDump
	}
	return WriteNpy(fileName, a.Data())
}
