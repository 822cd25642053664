package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/jgbaldwinbrown/makem"
)

type Params struct {
	Name string
	Fqdir string
	Refdb string
	Outdir string
	Scriptdir string
}

func CleanSlash(s string) string {
	re := regexp.MustCompile(`/+`)
	return re.ReplaceAllString(s, "/")
}

func AddTrim(mf *makem.MakeData, p Params) {
	var r makem.Recipe
	target := CleanSlash(p.Outdir + "/trimmed/trim.done")
	r.AddTargets(target)
	r.AddDeps(p.Fqdir)
	r.AddScripts(
		"mkdir -p `dirname $@`",
		CleanSlash(p.Scriptdir+"/cutadapt_trim.sh "+p.Fqdir+" "+p.Outdir+"/trimmed/"),
		"touch $@",
	)
	mf.Add(r)
}

func AddUsearch(mf *makem.MakeData, p Params) {
	var r makem.Recipe
	target := CleanSlash(p.Outdir + "/usearch/otutab.txt")
	r.AddTargets(target)
	r.AddDeps(CleanSlash(p.Outdir + "/trimmed/trim.done"))
	r.AddScripts(
		"mkdir -p `dirname $@`",
		CleanSlash(p.Scriptdir+"/usearch_otutab.sh "+p.Outdir+"/trimmed/ "+p.Outdir+"/usearch/"),
	)
	mf.Add(r)
}

func AddVsearch(mf *makem.MakeData, p Params) {
	var r makem.Recipe
	target := CleanSlash(p.Outdir + "/vsearch/otutab.txt")
	r.AddTargets(target)
	r.AddDeps(CleanSlash(p.Outdir + "/trimmed/trim.done"))
	r.AddScripts(
		"mkdir -p `dirname $@`",
		CleanSlash(p.Scriptdir+"/vsearch_otutab.sh "+p.Outdir+"/trimmed/ "+p.Outdir+"/vsearch/"),
	)
	mf.Add(r)
}

func AddDada2(mf *makem.MakeData, p Params) {
	var r makem.Recipe
	target := CleanSlash(p.Outdir + "/dada2/seqtab.csv")
	r.AddTargets(target)
	r.AddDeps(CleanSlash(p.Outdir + "/trimmed/trim.done"))
	r.AddScripts(
		"mkdir -p `dirname $@`",
		CleanSlash(p.Scriptdir+"/dada2_asvtab.sh "+p.Outdir+"/trimmed/ "+p.Outdir+"/dada2/"),
	)
	mf.Add(r)
}

func AddCompare(mf *makem.MakeData, p Params) {
	var r makem.Recipe
	target := CleanSlash(p.Outdir + "/otucomp/" + p.Name + "_counts.txt")
	r.AddTargets(target)
	r.AddDeps(
		CleanSlash(p.Outdir+"/usearch/otutab.txt"),
		CleanSlash(p.Outdir+"/vsearch/otutab.txt"),
		CleanSlash(p.Outdir+"/dada2/seqtab.csv"),
	)
	r.AddScripts(
		"mkdir -p `dirname $@`",
		CleanSlash(fmt.Sprintf(
			"go_otucomp -u %v/usearch/otutab.txt -v %v/vsearch/otutab.txt -d %v/dada2/seqtab.csv -o %v/otucomp/%v",
			p.Outdir, p.Outdir, p.Outdir, p.Outdir, p.Name,
		)),
	)
	mf.Add(r)
}

func MakeMakefile(params []Params) makem.MakeData {
	var mf makem.MakeData
	for _, p := range params {
		AddTrim(&mf, p)
		AddUsearch(&mf, p)
		AddVsearch(&mf, p)
		AddDada2(&mf, p)
		AddCompare(&mf, p)
	}
	return mf
}

func main() {
	params := []Params{
		Params{
			"run1",
			"data/run1/fastq/",
			"refs/mock_refs.fa",
			"out/run1",
			"scripts/",
		},
	}
	mf := MakeMakefile(params)
	mfFile, err := os.Create("Makefile")
	if err != nil {
		panic(err)
	}
	defer mfFile.Close()
	mf.Fprint(mfFile)
}
